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

// Package game drives the alternating-turn loop between two move
// strategies on the shared board, detects termination and hands the
// finished game off for notification and persistence.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/George6561/KingFischer/pkg/board"
	"github.com/George6561/KingFischer/pkg/notation"
	"github.com/George6561/KingFischer/pkg/strategy"
)

// state of the turn loop's state machine.
type state uint8

const (
	stateIdle state = iota
	stateInitializing
	stateAwaitingMove
	stateApplying
	stateRendering
	stateCheckingTermination
	stateFinalizing
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInitializing:
		return "initializing"
	case stateAwaitingMove:
		return "awaiting-move"
	case stateApplying:
		return "applying"
	case stateRendering:
		return "rendering"
	case stateCheckingTermination:
		return "checking-termination"
	case stateFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// Config wires up an Orchestrator.
type Config struct {
	Board *board.Board

	// Strategies per side. Both are required.
	White, Black strategy.MoveStrategy

	// Optional render surface; rendering is skipped when absent.
	Renderer Renderer

	// Optional persistence for finished games.
	Saver *notation.Saver

	// The statistical strategy instance listeners receive. Usually one
	// of White or Black, but any instance may be observed.
	Stats *strategy.RandomPlayout

	// Fixed delay between turns, purely for observability.
	Pacing time.Duration
}

// Orchestrator owns the authoritative move history of one game at a
// time and runs the turn loop. It is not safe for concurrent use; one
// game runs at a time.
type Orchestrator struct {
	board      *board.Board
	strategies [2]strategy.MoveStrategy
	renderer   Renderer
	saver      *notation.Saver
	stats      *strategy.RandomPlayout
	pacing     time.Duration

	listeners []EndListener

	history []board.Move

	state     state
	result    Result
	finished  bool
	savedPath string
}

// New validates the configuration and builds an Orchestrator.
func New(config Config) (*Orchestrator, error) {
	if config.Board == nil {
		return nil, fmt.Errorf("game: a board is required")
	}
	if config.White == nil || config.Black == nil {
		return nil, fmt.Errorf("game: both sides need a strategy")
	}

	return &Orchestrator{
		board:      config.Board,
		strategies: [2]strategy.MoveStrategy{board.White: config.White, board.Black: config.Black},
		renderer:   config.Renderer,
		saver:      config.Saver,
		stats:      config.Stats,
		pacing:     config.Pacing,
	}, nil
}

// AddEndListener registers a listener for end-of-game notifications.
func (o *Orchestrator) AddEndListener(listener EndListener) {
	o.listeners = append(o.listeners, listener)
}

// RemoveEndListener drops a previously registered listener.
func (o *Orchestrator) RemoveEndListener(listener EndListener) {
	for i, l := range o.listeners {
		if l == listener {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// History returns the authoritative move history of the running game.
// The history is append-only; it is replaced wholesale when a new game
// starts.
func (o *Orchestrator) History() []board.Move {
	return o.history
}

// Result returns the game result and whether the game actually reached
// a terminal condition (a canceled game did not).
func (o *Orchestrator) Result() (Result, bool) {
	return o.result, o.finished
}

// SavedPath returns where the last finished game was persisted.
func (o *Orchestrator) SavedPath() string {
	return o.savedPath
}

// Run plays one game to completion. Finalization (listener
// notification, persistence of what was played and the board reset)
// runs on every exit path, including cancellation and mid-loop
// failures. Engine process cleanup is the caller's deferred concern,
// mirroring how the process was started.
func (o *Orchestrator) Run(ctx context.Context) (err error) {
	defer func() {
		if ferr := o.finalize(); err == nil {
			err = ferr
		}
		o.setState(stateIdle)
	}()

	o.setState(stateInitializing)
	o.history = nil
	o.finished = false
	o.result = Draw

	for _, s := range o.strategies {
		if preparer, ok := s.(strategy.Preparer); ok {
			if err := preparer.Prepare(ctx); err != nil {
				return err
			}
		}
	}

	if err := o.render(ctx, board.NoSquare, board.NoSquare); err != nil {
		return err
	}

	before := o.board.Snapshot()

	for {
		mover := o.board.Mover()

		o.setState(stateAwaitingMove)
		move, ok, err := o.strategies[mover].ProposeMove(ctx, o.board)
		if err != nil {
			return fmt.Errorf("game: %s strategy: %w", mover, err)
		}

		if !ok {
			// The mover has no move: terminal.
			o.conclude(mover)
			return nil
		}

		o.setState(stateApplying)
		if err := o.board.ApplyMove(move); err != nil {
			return fmt.Errorf("game: committing %s: %w", move, err)
		}
		o.history = append(o.history, move)
		o.observe(move)

		o.setState(stateRendering)
		if err := o.render(ctx, move.From, move.To); err != nil {
			return err
		}

		o.setState(stateCheckingTermination)
		after := o.board.Snapshot()

		if after == before {
			logrus.Info("game over: board state unchanged")
			o.finished = true
			o.result = Draw
			return nil
		}

		if o.board.IsCheckmate(o.board.Mover()) {
			logrus.Info("game over: checkmate")
			o.finished = true
			o.result = GameLostBy[o.board.Mover()]
			return nil
		}

		before = after

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(o.pacing):
		}
	}
}

// conclude settles the result when the mover had no move to propose:
// checkmate if the mover stands mated, otherwise a drawish stand-still.
func (o *Orchestrator) conclude(mover board.Side) {
	o.finished = true
	if o.board.IsCheckmate(mover) {
		logrus.Infof("game over: %s is checkmated", mover)
		o.result = GameLostBy[mover]
		return
	}

	logrus.Infof("game over: %s has no move", mover)
	o.result = Draw
}

// observe feeds the committed move to every strategy that tracks the
// game, with the post-move snapshot. A strategy playing both sides is
// only told once.
func (o *Orchestrator) observe(move board.Move) {
	snapshot := o.board.Snapshot()
	var told strategy.MoveObserver
	for _, s := range o.strategies {
		observer, ok := s.(strategy.MoveObserver)
		if !ok || observer == told {
			continue
		}
		observer.ObserveMove(move, snapshot)
		told = observer
	}
}

// render issues the asynchronous refresh and blocks the turn loop until
// the render context signals completion.
func (o *Orchestrator) render(ctx context.Context, from, to board.Square) error {
	if o.renderer == nil {
		return nil
	}

	done := o.renderer.Refresh(from, to)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finalize notifies listeners, persists the played moves and resets the
// board. Listener failures are isolated from each other and from the
// save path.
func (o *Orchestrator) finalize() error {
	o.setState(stateFinalizing)

	for _, listener := range o.listeners {
		o.notify(listener)
	}

	var err error
	if o.saver != nil && len(o.history) > 0 {
		path, serr := o.saver.Save(o.history)
		if serr != nil {
			err = serr
		} else {
			o.savedPath = path
			logrus.Infof("game saved to: %s", path)
		}
	}

	o.board.Reset()
	return err
}

func (o *Orchestrator) notify(listener EndListener) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("game end listener panicked: %v", r)
		}
	}()

	listener.OnGameEnd(o.stats)
}

func (o *Orchestrator) setState(next state) {
	o.state = next
	logrus.Debugf("turn loop: %s", next)
}
