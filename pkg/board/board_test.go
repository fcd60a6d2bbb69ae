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

package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("plain move", func(t *testing.T) {
		move, err := ParseMove("e2e4")
		require.NoError(t, err)
		require.Equal(t, Move{From: Square{1, 4}, To: Square{3, 4}}, move)
		require.Equal(t, "e2e4", move.String())
	})

	t.Run("promotion keeps its letter", func(t *testing.T) {
		move, err := ParseMove("e7e8q")
		require.NoError(t, err)
		require.Equal(t, byte('q'), move.Promo)
		require.Equal(t, "e7e8q", move.String())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		for _, str := range []string{"", "e2", "e2e9", "z2e4", "e2e4qq"} {
			_, err := ParseMove(str)
			require.ErrorIs(t, err, ErrBadMove, "input %q", str)
		}
	})
}

func TestInitialPosition(t *testing.T) {
	b := New()

	require.Equal(t, White, b.Mover())
	require.Len(t, b.LegalMoves(), 20)

	require.Equal(t, Rook, b.PieceAt(Square{0, 0}))
	require.Equal(t, King, b.PieceAt(Square{0, 4}))
	require.Equal(t, Pawn, b.PieceAt(Square{1, 4}))
	require.Equal(t, -Pawn, b.PieceAt(Square{6, 4}))
	require.Equal(t, -Queen, b.PieceAt(Square{7, 3}))
	require.Equal(t, Empty, b.PieceAt(Square{3, 3}))
}

func TestApplyMove(t *testing.T) {
	t.Run("legal move advances the turn", func(t *testing.T) {
		b := New()
		before := b.Snapshot()

		move, _ := ParseMove("e2e4")
		require.NoError(t, b.ApplyMove(move))

		require.Equal(t, Black, b.Mover())
		require.Equal(t, Pawn, b.PieceAt(Square{3, 4}))
		require.Equal(t, Empty, b.PieceAt(Square{1, 4}))
		require.NotEqual(t, before, b.Snapshot())
	})

	t.Run("illegal move is refused", func(t *testing.T) {
		b := New()
		move, _ := ParseMove("e2e5")
		require.ErrorIs(t, b.ApplyMove(move), ErrIllegalMove)
	})

	t.Run("checking move is visible to the new mover", func(t *testing.T) {
		b := New()
		for _, str := range []string{"e2e4", "f7f6", "d1h5"} {
			move, _ := ParseMove(str)
			require.NoError(t, b.ApplyMove(move))
		}

		require.True(t, b.InCheck(Black))
		require.False(t, b.InCheck(White))
		require.False(t, b.IsCheckmate(Black))
	})

	t.Run("fools mate is checkmate", func(t *testing.T) {
		b := New()
		for _, str := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
			move, _ := ParseMove(str)
			require.NoError(t, b.ApplyMove(move))
		}

		require.True(t, b.IsCheckmate(White))
		require.Empty(t, b.LegalMoves())
	})
}

func TestPreview(t *testing.T) {
	b := New()
	before := b.Snapshot()

	move, _ := ParseMove("e2e4")
	preview, err := b.Preview(move)
	require.NoError(t, err)

	require.Equal(t, before, b.Snapshot(), "preview must not mutate the board")
	require.NoError(t, b.ApplyMove(move))
	require.Equal(t, preview, b.Snapshot())
}

func TestReset(t *testing.T) {
	b := New()
	initial := b.Snapshot()

	move, _ := ParseMove("e2e4")
	require.NoError(t, b.ApplyMove(move))
	b.Reset()

	require.Equal(t, initial, b.Snapshot())
	require.Equal(t, White, b.Mover())
}

func TestNewFromFEN(t *testing.T) {
	t.Run("single legal move", func(t *testing.T) {
		b, err := NewFromFEN("k7/8/8/8/8/8/1q6/K7 w - - 0 1")
		require.NoError(t, err)
		require.Equal(t, []Move{{From: Square{0, 0}, To: Square{1, 1}}}, b.LegalMoves())
	})

	t.Run("bad FEN", func(t *testing.T) {
		_, err := NewFromFEN("not a position")
		require.Error(t, err)
	})
}
