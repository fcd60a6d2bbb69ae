// Copyright © 2024 George Miller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/George6561/KingFischer/pkg/board"
	"github.com/George6561/KingFischer/pkg/common"
	"github.com/George6561/KingFischer/pkg/engine"
	"github.com/George6561/KingFischer/pkg/export"
	"github.com/George6561/KingFischer/pkg/game"
	"github.com/George6561/KingFischer/pkg/notation"
	"github.com/George6561/KingFischer/pkg/strategy"
)

const SPIN = 31

// kingfischer play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run automated exhibition games",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play runs one or more automated games between the two
			configured sides, drawing the board in the terminal after
			every move and saving each finished game's notation to a
			numbered file in the games directory.

			By default a UCI engine plays White and a statistical mover
			plays Black. The pairing, the engine command, the pacing
			delay and the output directory are all read from the
			configuration file; see the config command.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCount, _ := cmd.Flags().GetInt("games")
			doExport, _ := cmd.Flags().GetBool("export")

			config, err := common.LoadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			b := board.New()

			var eng *engine.Engine
			var orch *game.Orchestrator
			var playout *strategy.RandomPlayout
			playoutSide := board.Black

			history := func() []board.Move {
				if orch == nil {
					return nil
				}
				return orch.History()
			}

			build := func(name string, side board.Side) (strategy.MoveStrategy, error) {
				switch name {
				case common.StrategyEngine:
					if eng == nil {
						if eng, err = startEngine(config.Engine); err != nil {
							return nil, err
						}
					}
					return strategy.NewEngineDelegate(eng, history), nil

				case common.StrategyRandom:
					if playout == nil {
						playout = strategy.NewRandomPlayout(config.Seed, b.Snapshot())
						playout.SetExploration(config.Exploration)
						playoutSide = side
					}
					return playout, nil

				default:
					return nil, fmt.Errorf("play: unknown strategy %q for %s", name, side)
				}
			}

			// Black first so a double-random pairing keeps its record
			// from Black's point of view, like the default pairing.
			black, err := build(config.Black, board.Black)
			if err != nil {
				return err
			}
			white, err := build(config.White, board.White)
			if err != nil {
				return err
			}

			if eng != nil {
				defer func() { _ = eng.Kill() }()
			}

			renderer := game.NewTerminalRenderer(b, cmd.OutOrStdout())
			renderer.Start(ctx)

			orch, err = game.New(game.Config{
				Board:    b,
				White:    white,
				Black:    black,
				Renderer: renderer,
				Saver:    notation.NewSaver(config.GamesDir),
				Stats:    playout,
				Pacing:   time.Duration(config.PacingMS) * time.Millisecond,
			})
			if err != nil {
				return err
			}

			orch.AddEndListener(game.EndListenerFunc(func(stats *strategy.RandomPlayout) {
				if stats == nil {
					return
				}
				logrus.Infof(
					"record: %d games, %d wins, %d losses, %d draws",
					stats.GamesPlayed(), stats.Wins(), stats.Losses(), stats.Draws(),
				)
			}))

			for number := 1; number <= gameCount; number++ {
				logrus.Infof("Starting game \x1b[33m%d\x1b[0m of %d...", number, gameCount)

				if err := orch.Run(ctx); err != nil {
					return err
				}

				result, _ := orch.Result()
				logrus.Infof("Game %d finished \x1b[33m%s\x1b[0m", number, result)

				if path := orch.SavedPath(); path != "" {
					logrus.Infof("Notation saved to \x1b[34m%s\x1b[0m", path)
				}

				if playout != nil {
					recordGame(playout, playoutSide, result, orch.History())
				}

				if doExport {
					if err := exportGame(number, orch.History()); err != nil {
						logrus.Errorf("exporting game %d: %v", number, err)
					}
				}

				if playout != nil && number < gameCount {
					playout.ResetTree(b.Snapshot())
				}
			}

			if playout != nil {
				if line := playout.BestLine(8); len(line) > 0 {
					labels := make([]string, 0, len(line))
					for _, move := range line {
						labels = append(labels, move.String())
					}
					logrus.Infof("Most promising line so far: %s", strings.Join(labels, " "))
				}

				if doExport {
					if err := exportStatistics(playout); err != nil {
						logrus.Errorf("exporting statistics: %v", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1, "Number of games to play")
	cmd.Flags().BoolP("export", "e", false, "Write position and statistics CSVs")

	return cmd
}

func startEngine(config engine.Config) (*engine.Engine, error) {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
	logrus.Infof("Starting \x1b[33m%s\x1b[0m...", config.Name)
	s.Start()
	defer s.Stop()

	return engine.Start(config)
}

// recordGame folds one finished game into the playout side's record:
// the outcome tally, the win-score backpropagation, and a success mark
// for every move that side played.
func recordGame(playout *strategy.RandomPlayout, side board.Side, result game.Result, history []board.Move) {
	outcome := result.For(side)
	playout.RecordOutcome(outcome)

	mover := board.White
	for _, move := range history {
		if mover == side {
			playout.UpdateMoveStatistics(move.String(), outcome == "win")
		}
		mover = mover.Other()
	}
}

func exportGame(number int, history []board.Move) error {
	common.TryMkdir(common.ExportsDirectory)

	log := export.LogFromHistory(history, board.New())

	path := filepath.Join(common.ExportsDirectory, fmt.Sprintf("game_%03d.csv", number))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return export.WriteCSV(file, log)
}

func exportStatistics(playout *strategy.RandomPlayout) error {
	common.TryMkdir(common.ExportsDirectory)

	path := filepath.Join(common.ExportsDirectory, "statistics.csv")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return export.WriteStatisticsCSV(file, playout)
}
