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

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/George6561/KingFischer/pkg/strategy"
)

// WriteCSV writes the position log as CSV, one row per half-move:
// the move index, the 64 square codes, and the score.
func WriteCSV(w io.Writer, log *PositionLog) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := make([]string, 0, 66)
	header = append(header, "move")
	for i := 0; i < 64; i++ {
		header = append(header, "sq"+strconv.Itoa(i))
	}
	header = append(header, "score")

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range log.Records() {
		row := make([]string, 0, 66)
		row = append(row, strconv.Itoa(i+1))
		for _, code := range record.Vector {
			row = append(row, strconv.Itoa(int(code)))
		}
		row = append(row, strconv.FormatFloat(record.Score, 'g', -1, 64))

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

// WriteStatisticsCSV writes a playout strategy's learning state as CSV:
// one summary row of game outcomes, then one row per registered move
// with its success count. Moves are sorted for stable output.
func WriteStatisticsCSV(w io.Writer, stats *strategy.RandomPlayout) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"games", "wins", "losses", "draws"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	summary := []string{
		strconv.Itoa(stats.GamesPlayed()),
		strconv.Itoa(stats.Wins()),
		strconv.Itoa(stats.Losses()),
		strconv.Itoa(stats.Draws()),
	}
	if err := writer.Write(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if err := writer.Write([]string{"move", "successes"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	statistics := stats.MoveStatistics()
	moves := make([]string, 0, len(statistics))
	for move := range statistics {
		moves = append(moves, move)
	}
	sort.Strings(moves)

	for _, move := range moves {
		row := []string{move, strconv.Itoa(statistics[move])}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", move, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
