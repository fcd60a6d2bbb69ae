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

// Package notation reconstructs annotated algebraic notation from a raw
// coordinate move list and persists finished games to numbered files.
package notation

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/George6561/KingFischer/pkg/board"
)

// Format replays the raw move list on the given fresh board and
// produces annotated notation: piece letters, capture markers, castling
// symbols and check/checkmate suffixes, two moves per numbered line.
//
// Reconstruction is best effort over an already-committed history: a
// move whose source square is empty, or that the board refuses, is
// logged and skipped instead of aborting the whole result.
func Format(moves []board.Move, b *board.Board) string {
	var out strings.Builder
	counter := 1

	for i, move := range moves {
		piece := b.PieceAt(move.From)
		destination := b.PieceAt(move.To)

		if piece == board.Empty {
			logrus.Errorf("no piece found at source %s of move %s", move.From.Label(), move)
			continue
		}

		if castling := detectCastling(piece, move); castling != "" {
			if err := b.ApplyMove(move); err != nil {
				logrus.Errorf("replaying %s: %v", move, err)
				continue
			}
			writeHalfMove(&out, &counter, i, castling)
			continue
		}

		if err := b.ApplyMove(move); err != nil {
			logrus.Errorf("replaying %s: %v", move, err)
			continue
		}

		capture := ""
		if destination != board.Empty {
			if abs(piece) == board.Pawn {
				capture = string(byte('a'+move.From.File)) + "x"
			} else {
				capture = "x"
			}
		}

		notation := pieceLetter(piece) + capture + move.To.Label()

		mover := b.Mover()
		if b.IsCheckmate(mover) {
			notation += "#"
		} else if b.InCheck(mover) {
			notation += "+"
		}

		writeHalfMove(&out, &counter, i, notation)
	}

	return out.String()
}

// writeHalfMove appends one half-move: White's opens a numbered line,
// Black's closes it.
func writeHalfMove(out *strings.Builder, counter *int, index int, notation string) {
	if index%2 == 0 {
		fmt.Fprintf(out, "%d. %s ", *counter, notation)
	} else {
		fmt.Fprintf(out, "%s\n", notation)
		*counter++
	}
}

// detectCastling classifies a king moving two files on its home rank.
// The symbols are emitted verbatim, never piece-letter-prefixed.
func detectCastling(piece int8, move board.Move) string {
	if abs(piece) != board.King {
		return ""
	}

	homeRank := 0
	if piece < 0 {
		homeRank = 7
	}
	if move.From.Rank != homeRank || move.From.File != 4 {
		return ""
	}

	switch move.To.File {
	case 6:
		return "O-O"
	case 2:
		return "O-O-O"
	default:
		return ""
	}
}

func pieceLetter(piece int8) string {
	switch abs(piece) {
	case board.Rook:
		return "R"
	case board.Knight:
		return "N"
	case board.Bishop:
		return "B"
	case board.Queen:
		return "Q"
	case board.King:
		return "K"
	default:
		return ""
	}
}

func abs(piece int8) int8 {
	if piece < 0 {
		return -piece
	}
	return piece
}
