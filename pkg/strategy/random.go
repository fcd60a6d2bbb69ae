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

package strategy

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/George6561/KingFischer/pkg/board"
	"github.com/George6561/KingFischer/pkg/search"
)

// Outcome scores accumulated into the tree when a game result is
// recorded.
const (
	winScore  = 1.0
	drawScore = 0.5
	lossScore = 0.0
)

// RandomPlayout selects uniformly among the mover's legal moves and
// accumulates learning state: per-move success counters that persist
// across games within the instance, and a per-game tree of the visited
// line. The strategy owns its source of randomness so tests can seed
// it.
type RandomPlayout struct {
	random      *rand.Rand
	tree        *search.Tree
	exploration float64

	gamesPlayed int
	wins        int
	losses      int
	draws       int

	// Keyed by positional move notation, counting recorded successes.
	moveStatistics map[string]int
}

// NewRandomPlayout creates a playout strategy rooted at the given board
// snapshot. A zero seed draws one from the clock.
func NewRandomPlayout(seed int64, snapshot string) *RandomPlayout {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandomPlayout{
		random:         rand.New(rand.NewSource(seed)),
		tree:           search.NewTree(snapshot),
		exploration:    search.DefaultExploration,
		moveStatistics: make(map[string]int),
	}
}

// ProposeMove picks a legal move uniformly at random. A mover with no
// legal moves yields the terminal not-ok signal. The chosen move gets a
// zero-valued statistics entry if it has never been proposed before; an
// existing counter is never reset.
func (r *RandomPlayout) ProposeMove(ctx context.Context, b *board.Board) (board.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return board.Move{}, false, err
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		logrus.Infof("%s has no legal moves", b.Mover())
		return board.Move{}, false, nil
	}

	move := moves[r.random.Intn(len(moves))]
	if _, ok := r.moveStatistics[move.String()]; !ok {
		r.moveStatistics[move.String()] = 0
	}

	return move, true, nil
}

// ObserveMove books a committed move into the game tree: the child is
// created on first sight and the current pointer follows it. The visit
// backs up the whole path, so every ancestor of a visited node carries
// at least as many visits as the node itself.
func (r *RandomPlayout) ObserveMove(move board.Move, snapshot string) {
	current := r.tree.Current()
	if err := r.tree.MoveToChild(move); err != nil {
		r.tree.AddChild(current, snapshot, move)
		if err := r.tree.MoveToChild(move); err != nil {
			// Cannot happen: the child was just linked.
			logrus.Errorf("tree bookkeeping failed for %s: %v", move, err)
			return
		}
	}

	for node := r.tree.Current(); node != nil; node = node.Parent() {
		node.IncrementVisitCount()
	}
}

// RecordOutcome records a finished game. The result is matched
// case-insensitively against "win", "loss" and "draw"; anything else
// still counts as a played game but is otherwise ignored. Recognized
// results are also accumulated into the visited line's win scores.
func (r *RandomPlayout) RecordOutcome(result string) {
	r.gamesPlayed++

	var score float64
	switch strings.ToLower(result) {
	case "win":
		r.wins++
		score = winScore
	case "loss":
		r.losses++
		score = lossScore
	case "draw":
		r.draws++
		score = drawScore
	default:
		logrus.Infof("game result recorded: %s", result)
		r.logStatistics()
		return
	}

	for node := r.tree.Current(); node != nil; node = node.Parent() {
		node.AddWinScore(score)
	}

	logrus.Infof("game result recorded: %s", result)
	r.logStatistics()
}

// UpdateMoveStatistics bumps the success counter for a move by one on
// success and leaves it unchanged otherwise, creating the entry lazily.
func (r *RandomPlayout) UpdateMoveStatistics(move string, isSuccess bool) {
	delta := 0
	if isSuccess {
		delta = 1
	}
	r.moveStatistics[move] += delta
}

// SetExploration overrides the exploration constant used by BestLine's
// child selection. Non-positive values are ignored and keep the current
// constant.
func (r *RandomPlayout) SetExploration(c float64) {
	if c > 0 {
		r.exploration = c
	}
}

// ResetTree rebuilds the per-game tree scaffold for a fresh game. Move
// statistics and outcome counters survive: they are the learning state.
func (r *RandomPlayout) ResetTree(snapshot string) {
	r.tree = search.NewTree(snapshot)
}

// Tree returns the strategy's game tree.
func (r *RandomPlayout) Tree() *search.Tree {
	return r.tree
}

// BestLine walks the tree greedily from the root using UCT selection,
// yielding the most promising line seen so far, at most limit moves
// long.
func (r *RandomPlayout) BestLine(limit int) []board.Move {
	line := make([]board.Move, 0, limit)

	node := r.tree.Root()
	for len(line) < limit {
		child := search.SelectChild(node, r.exploration)
		if child == nil {
			break
		}
		if move, ok := child.Move(); ok {
			line = append(line, move)
		}
		node = child
	}

	return line
}

// GamesPlayed returns the number of recorded games.
func (r *RandomPlayout) GamesPlayed() int { return r.gamesPlayed }

// Wins returns the number of recorded wins.
func (r *RandomPlayout) Wins() int { return r.wins }

// Losses returns the number of recorded losses.
func (r *RandomPlayout) Losses() int { return r.losses }

// Draws returns the number of recorded draws.
func (r *RandomPlayout) Draws() int { return r.draws }

// MoveCount looks up the success counter for a move. A move never
// proposed is absent, not zero.
func (r *RandomPlayout) MoveCount(move string) (int, bool) {
	count, ok := r.moveStatistics[move]
	return count, ok
}

// MoveStatistics returns a copy of the success counters.
func (r *RandomPlayout) MoveStatistics() map[string]int {
	stats := make(map[string]int, len(r.moveStatistics))
	for move, count := range r.moveStatistics {
		stats[move] = count
	}
	return stats
}

func (r *RandomPlayout) logStatistics() {
	logrus.Infof("games played: %d", r.gamesPlayed)
	logrus.Infof("wins: %d, losses: %d, draws: %d", r.wins, r.losses, r.draws)
	logrus.Infof("move success rates: %v", r.moveStatistics)
}
