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

// Package common holds the application's directory layout and its
// configuration file.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const Permissions = 0755

var (
	Directory = filepath.Join(xdg.Home, "kingfischer")

	// Reconstructed games, one numbered text file per game.
	GamesDirectory = filepath.Join(Directory, "games")

	// CSV exports of position logs and move statistics.
	ExportsDirectory = filepath.Join(Directory, "exports")

	ConfigFile = filepath.Join(Directory, "config.yaml")
)

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, Permissions)
	}
}
