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
	"fmt"

	"github.com/George6561/KingFischer/pkg/board"
	"github.com/George6561/KingFischer/pkg/engine"
)

// EngineDelegate proposes moves by delegating to an external engine
// process: the accumulated move history goes out as a position update,
// then the engine is asked for its best move under its fixed thinking
// budget. An empty answer is the terminal not-ok signal.
type EngineDelegate struct {
	engine  *engine.Engine
	history func() []board.Move
}

// NewEngineDelegate wraps a started engine. The history supplier must
// return the authoritative move history of the running game.
func NewEngineDelegate(eng *engine.Engine, history func() []board.Move) *EngineDelegate {
	return &EngineDelegate{engine: eng, history: history}
}

// Prepare runs the engine's startup handshake before the first move.
func (e *EngineDelegate) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.engine.Initialize(); err != nil {
		return fmt.Errorf("initializing %s: %w", e.engine.Name(), err)
	}
	if err := e.engine.NewGame(); err != nil {
		return fmt.Errorf("preparing %s for a new game: %w", e.engine.Name(), err)
	}
	return nil
}

// ProposeMove forwards the position and returns the engine's answer
// verbatim.
func (e *EngineDelegate) ProposeMove(ctx context.Context, b *board.Board) (board.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return board.Move{}, false, err
	}

	if err := e.engine.Position(e.history()); err != nil {
		return board.Move{}, false, err
	}
	if err := e.engine.Synchronize(); err != nil {
		return board.Move{}, false, err
	}

	return e.engine.BestMove()
}
