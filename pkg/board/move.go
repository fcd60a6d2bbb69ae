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
	"errors"
	"fmt"
)

// Square identifies one square of the board by zero-based coordinates.
// Rank 0 is rank 1, file 0 is the a-file.
type Square struct {
	Rank, File int
}

// NoSquare is the sentinel used when no square should be highlighted.
var NoSquare = Square{Rank: -1, File: -1}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Rank >= 0 && sq.Rank < 8 && sq.File >= 0 && sq.File < 8
}

// Label returns the coordinate label of the square, like "e4".
func (sq Square) Label() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File, sq.Rank+1)
}

// Move is a coordinate move: source square, destination square and an
// optional promotion piece letter (0 when the move is not a promotion).
// Moves are immutable values and compare element-wise with ==.
type Move struct {
	From, To Square
	Promo    byte
}

var ErrBadMove = errors.New("board: malformed coordinate move")

// ParseMove parses an engine-style coordinate move like "e2e4" or
// "e7e8q" into a Move.
func ParseMove(str string) (Move, error) {
	if len(str) != 4 && len(str) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, str)
	}

	squares := [2]Square{}
	for i := 0; i < 2; i++ {
		file := int(str[i*2] - 'a')
		rank := int(str[i*2+1] - '1')
		squares[i] = Square{Rank: rank, File: file}
		if !squares[i].Valid() {
			return Move{}, fmt.Errorf("%w: %q", ErrBadMove, str)
		}
	}

	move := Move{From: squares[0], To: squares[1]}
	if len(str) == 5 {
		move.Promo = str[4]
	}

	return move, nil
}

// String returns the move in engine coordinate form, like "e2e4".
func (m Move) String() string {
	str := m.From.Label() + m.To.Label()
	if m.Promo != 0 {
		str += string(m.Promo)
	}
	return str
}
