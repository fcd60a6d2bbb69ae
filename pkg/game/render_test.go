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
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/George6561/KingFischer/pkg/board"
)

// syncWriter serializes writes so the test can read the buffer after
// the completion signal without racing the render goroutine.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestRefreshSignalsCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncWriter{}
	renderer := NewTerminalRenderer(board.New(), out)
	renderer.Start(ctx)

	move, _ := board.ParseMove("e2e4")
	done := renderer.Refresh(move.From, move.To)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("render completion signal never arrived")
	}

	require.Contains(t, out.String(), "last move: e2 e4")
}

func TestRefreshWithoutHighlight(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncWriter{}
	renderer := NewTerminalRenderer(board.New(), out)
	renderer.Start(ctx)

	<-renderer.Refresh(board.NoSquare, board.NoSquare)

	require.NotContains(t, out.String(), "last move")
	require.NotEmpty(t, out.String())
}
