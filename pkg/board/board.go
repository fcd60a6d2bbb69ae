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

// Package board exposes the chess board capability consumed by the rest
// of the system. Legality, move generation and check detection live in
// github.com/notnil/chess; this package only adapts that library to the
// coordinate-move surface the game core works with.
package board

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// Side identifies one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

// String returns "white" or "black".
func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	return s ^ 1
}

// Signed piece codes returned by PieceAt. White pieces are positive,
// black pieces negative, empty squares zero.
const (
	Empty  int8 = 0
	Pawn   int8 = 1
	Rook   int8 = 2
	Knight int8 = 3
	Bishop int8 = 4
	Queen  int8 = 5
	King   int8 = 6
)

var ErrIllegalMove = errors.New("board: move is not legal in this position")

// Board is the single mutable board resource of a game. Only the
// compute context may call its mutating methods.
type Board struct {
	game *chess.Game

	// Whether the move applied last gave check to the new mover.
	lastCheck bool
}

// New returns a board in the standard initial position.
func New() *Board {
	return &Board{game: chess.NewGame()}
}

// NewFromFEN returns a board set up from a FEN record.
func NewFromFEN(fen string) (*Board, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("board: bad FEN %q: %w", fen, err)
	}
	return &Board{game: chess.NewGame(option)}, nil
}

// Reset restores the standard initial position.
func (b *Board) Reset() {
	b.game = chess.NewGame()
	b.lastCheck = false
}

// Mover returns the side whose turn it is.
func (b *Board) Mover() Side {
	if b.game.Position().Turn() == chess.White {
		return White
	}
	return Black
}

// PieceAt returns the signed piece code on the given square.
func (b *Board) PieceAt(sq Square) int8 {
	piece := b.game.Position().Board().Piece(librarySquare(sq))
	if piece == chess.NoPiece {
		return Empty
	}

	code := pieceCode(piece.Type())
	if piece.Color() == chess.Black {
		code = -code
	}
	return code
}

// LegalMoves enumerates every legal move for the mover, in the move
// generator's order.
func (b *Board) LegalMoves() []Move {
	valid := b.game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, mv := range valid {
		moves = append(moves, coordinateMove(mv))
	}
	return moves
}

// ApplyMove commits a coordinate move and advances the turn. The move
// must be legal in the current position.
func (b *Board) ApplyMove(move Move) error {
	mv := b.findValid(move)
	if mv == nil {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	if err := b.game.Move(mv); err != nil {
		return fmt.Errorf("board: applying %s: %w", move, err)
	}

	b.lastCheck = mv.HasTag(chess.Check)
	return nil
}

// Preview returns the snapshot the board would have after the given
// move, without mutating the board.
func (b *Board) Preview(move Move) (string, error) {
	mv := b.findValid(move)
	if mv == nil {
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}
	return b.game.Position().Update(mv).String(), nil
}

// InCheck reports whether the given side is currently in check. Only
// the mover can be in check in a legal position.
func (b *Board) InCheck(side Side) bool {
	return side == b.Mover() && b.lastCheck
}

// IsCheckmate reports whether the given side has been checkmated.
func (b *Board) IsCheckmate(side Side) bool {
	return side == b.Mover() && b.game.Position().Status() == chess.Checkmate
}

// Snapshot returns an opaque, byte-comparable image of the full game
// state, used for stall detection and tree bookkeeping.
func (b *Board) Snapshot() string {
	return b.game.Position().String()
}

// Draw returns a human-readable diagram of the position.
func (b *Board) Draw() string {
	return b.game.Position().Board().Draw()
}

// findValid resolves a coordinate move against the legal move list,
// honoring the promotion letter when one is present.
func (b *Board) findValid(move Move) *chess.Move {
	from := librarySquare(move.From)
	to := librarySquare(move.To)

	for _, mv := range b.game.ValidMoves() {
		if mv.S1() != from || mv.S2() != to {
			continue
		}
		if move.Promo != 0 && mv.Promo() != promoType(move.Promo) {
			continue
		}
		return mv
	}
	return nil
}

func librarySquare(sq Square) chess.Square {
	return chess.Square(sq.Rank*8 + sq.File)
}

func coordinateMove(mv *chess.Move) Move {
	move := Move{
		From: Square{Rank: int(mv.S1()) / 8, File: int(mv.S1()) % 8},
		To:   Square{Rank: int(mv.S2()) / 8, File: int(mv.S2()) % 8},
	}
	if mv.Promo() != chess.NoPieceType {
		move.Promo = promoLetter(mv.Promo())
	}
	return move
}

func pieceCode(kind chess.PieceType) int8 {
	switch kind {
	case chess.Pawn:
		return Pawn
	case chess.Rook:
		return Rook
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return Empty
	}
}

func promoType(letter byte) chess.PieceType {
	switch letter {
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	default:
		return chess.NoPieceType
	}
}

func promoLetter(kind chess.PieceType) byte {
	switch kind {
	case chess.Queen:
		return 'q'
	case chess.Rook:
		return 'r'
	case chess.Bishop:
		return 'b'
	case chess.Knight:
		return 'n'
	default:
		return 0
	}
}
