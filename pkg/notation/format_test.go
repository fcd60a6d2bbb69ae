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

package notation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/George6561/KingFischer/pkg/board"
)

func moves(t *testing.T, strs ...string) []board.Move {
	t.Helper()

	list := make([]board.Move, 0, len(strs))
	for _, str := range strs {
		move, err := board.ParseMove(str)
		require.NoError(t, err)
		list = append(list, move)
	}
	return list
}

func TestFormat(t *testing.T) {
	t.Run("opening round trip", func(t *testing.T) {
		got := Format(moves(t, "e2e4", "e7e5", "g1f3"), board.New())
		require.Equal(t, "1. e4 e5\n2. Nf3 ", got)
	})

	t.Run("pawn capture uses its file letter", func(t *testing.T) {
		got := Format(moves(t, "e2e4", "d7d5", "e4d5"), board.New())
		require.Equal(t, "1. e4 d5\n2. exd5 ", got)
	})

	t.Run("piece capture uses a bare x", func(t *testing.T) {
		got := Format(moves(t, "e2e4", "d7d5", "e4d5", "d8d5"), board.New())
		require.Equal(t, "1. e4 d5\n2. exd5 Qxd5\n", got)
	})

	t.Run("check gets a plus suffix", func(t *testing.T) {
		got := Format(moves(t, "e2e4", "f7f6", "d1h5"), board.New())
		require.Equal(t, "1. e4 f6\n2. Qh5+ ", got)
	})

	t.Run("checkmate gets a hash suffix", func(t *testing.T) {
		got := Format(moves(t, "f2f3", "e7e5", "g2g4", "d8h4"), board.New())
		require.Equal(t, "1. f3 e5\n2. g4 Qh4#\n", got)
	})

	t.Run("castling is emitted verbatim", func(t *testing.T) {
		got := Format(moves(t,
			"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1",
		), board.New())
		require.Equal(t, "1. e4 e5\n2. Nf3 Nc6\n3. Bc4 Bc5\n4. O-O ", got)
	})

	t.Run("empty source square is skipped, not fatal", func(t *testing.T) {
		got := Format(moves(t, "e2e4", "d4d5", "e7e5"), board.New())
		require.Contains(t, got, "e4")
		require.Contains(t, got, "e5")
		require.NotContains(t, got, "d5")
	})

	t.Run("empty history yields empty text", func(t *testing.T) {
		require.Empty(t, Format(nil, board.New()))
	})
}
