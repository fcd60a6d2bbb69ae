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

// Package export turns played games and learning statistics into
// machine-readable data. It is a consumer of the core's move history,
// never a dependency of the core.
package export

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/George6561/KingFischer/pkg/board"
)

// PositionRecord is one board position as a flat vector of signed piece
// codes, square a1 first, plus the position's rating.
type PositionRecord struct {
	Vector [64]int8
	Score  float64
}

// PositionLog accumulates one record per half-move.
type PositionLog struct {
	records []PositionRecord
}

// Append stores the current position of the board with its score.
func (l *PositionLog) Append(b *board.Board, score float64) {
	var record PositionRecord
	record.Score = score

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			record.Vector[rank*8+file] = b.PieceAt(board.Square{Rank: rank, File: file})
		}
	}

	l.records = append(l.records, record)
}

// Records returns the stored records in move order.
func (l *PositionLog) Records() []PositionRecord {
	return append([]PositionRecord(nil), l.records...)
}

// Clear wipes the log for a new game.
func (l *PositionLog) Clear() {
	l.records = nil
}

// String renders the log one position per line, the board vector
// followed by its rating.
func (l *PositionLog) String() string {
	var out strings.Builder

	for i, record := range l.records {
		if i%2 == 0 {
			fmt.Fprintf(&out, "[White move %d - Rating] ", i/2+1)
		} else {
			fmt.Fprintf(&out, "[Black move %d - Rating] ", i/2+1)
		}

		for _, code := range record.Vector {
			fmt.Fprintf(&out, "%d ", code)
		}
		fmt.Fprintf(&out, "%g\n", record.Score)
	}

	return out.String()
}

// LogFromHistory replays a committed move history on a fresh board and
// logs the position after every move with a zero score. Moves the board
// refuses are logged and skipped, matching the notation replay's
// best-effort policy.
func LogFromHistory(moves []board.Move, b *board.Board) *PositionLog {
	log := &PositionLog{}

	for _, move := range moves {
		if err := b.ApplyMove(move); err != nil {
			logrus.Errorf("export: replaying %s: %v", move, err)
			continue
		}
		log.Append(b, 0)
	}

	return log
}
