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

// Package strategy provides the pluggable move-selection strategies
// that take turns on the shared board.
package strategy

import (
	"context"

	"github.com/George6561/KingFischer/pkg/board"
)

// MoveStrategy proposes the next move for the mover. The boolean is
// false when the mover has no move at all, which is a valid terminal
// signal and distinct from an error.
type MoveStrategy interface {
	ProposeMove(ctx context.Context, b *board.Board) (board.Move, bool, error)
}

// Preparer is implemented by strategies with stateful collaborators
// that need a handshake before the first move of a game.
type Preparer interface {
	Prepare(ctx context.Context) error
}

// MoveObserver is implemented by strategies that track every committed
// move, their own and the opponent's alike. The snapshot is the board
// image after the move was applied.
type MoveObserver interface {
	ObserveMove(move board.Move, snapshot string)
}
