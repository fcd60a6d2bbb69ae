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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/George6561/KingFischer/pkg/board"
	"github.com/George6561/KingFischer/pkg/common"
)

const (
	filePrefix    = "game_"
	fileExtension = ".txt"
)

// Saver persists reconstructed games into a directory under
// incrementally numbered filenames that never overwrite prior games.
type Saver struct {
	dir string
}

// NewSaver returns a saver writing into dir; an empty dir selects the
// default games directory.
func NewSaver(dir string) *Saver {
	if dir == "" {
		dir = common.GamesDirectory
	}
	return &Saver{dir: dir}
}

// Save reconstructs notation for the move list on a fresh board and
// writes it to the next available numbered file, returning its path.
func (s *Saver) Save(moves []board.Move) (string, error) {
	text := Format(moves, board.New())

	if err := os.MkdirAll(s.dir, common.Permissions); err != nil {
		return "", fmt.Errorf("notation: creating %s: %w", s.dir, err)
	}

	path, err := s.nextFile()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(text), common.Permissions); err != nil {
		return "", fmt.Errorf("notation: writing %s: %w", path, err)
	}

	return path, nil
}

// nextFile finds the first filename in ascending order that does not
// exist yet. The suffix has three zero-padded fields of 000 to 999; the
// last field increments first and rolls over into its neighbor.
func (s *Saver) nextFile() (string, error) {
	first, second, third := 0, 0, 0

	for {
		name := fmt.Sprintf("%s%03d_%03d_%03d%s", filePrefix, first, second, third, fileExtension)
		path := filepath.Join(s.dir, name)

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return path, nil
		} else if err != nil {
			return "", fmt.Errorf("notation: probing %s: %w", path, err)
		}

		third++
		if third > 999 {
			third = 0
			second++
		}
		if second > 999 {
			second = 0
			first++
		}
		if first > 999 {
			return "", errors.New("notation: games directory is full")
		}
	}
}
