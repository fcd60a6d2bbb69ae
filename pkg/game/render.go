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

package game

import (
	"context"
	"fmt"
	"io"

	"github.com/George6561/KingFischer/pkg/board"
)

// Renderer is the render surface the turn loop hands the board to after
// every committed move. Refresh is asynchronous: it returns a one-shot
// completion signal the caller awaits before the next turn. The loop
// guarantees a single request in flight at a time.
type Renderer interface {
	Refresh(from, to board.Square) <-chan struct{}
}

type refreshRequest struct {
	from, to board.Square
	done     chan struct{}
}

// TerminalRenderer draws the board to a writer from its own goroutine,
// which is the only context that touches the visual state.
type TerminalRenderer struct {
	board *board.Board
	out   io.Writer

	// Buffered for exactly the one request the loop may have in
	// flight, so Refresh never blocks the compute context.
	requests chan refreshRequest
}

// NewTerminalRenderer creates a renderer for the given board. Start
// must be called before the first Refresh.
func NewTerminalRenderer(b *board.Board, out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		board:    b,
		out:      out,
		requests: make(chan refreshRequest, 1),
	}
}

// Start runs the render context until ctx is canceled.
func (r *TerminalRenderer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case request := <-r.requests:
				r.draw(request.from, request.to)
				close(request.done)
			}
		}
	}()
}

// Refresh schedules a redraw and returns its completion signal.
func (r *TerminalRenderer) Refresh(from, to board.Square) <-chan struct{} {
	request := refreshRequest{from: from, to: to, done: make(chan struct{})}
	r.requests <- request
	return request.done
}

func (r *TerminalRenderer) draw(from, to board.Square) {
	if from.Valid() && to.Valid() {
		fmt.Fprintf(r.out, "last move: %s %s\n", from.Label(), to.Label())
	}
	fmt.Fprintln(r.out, r.board.Draw())
}
