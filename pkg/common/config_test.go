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

package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// pointConfigAt redirects the configuration paths into a temporary
// directory for the duration of one test.
func pointConfigAt(t *testing.T, dir string) {
	t.Helper()

	oldDirectory, oldFile := Directory, ConfigFile
	Directory = dir
	ConfigFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() {
		Directory, ConfigFile = oldDirectory, oldFile
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		pointConfigAt(t, t.TempDir())

		config, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), config)
		require.Equal(t, StrategyEngine, config.White)
		require.Equal(t, StrategyRandom, config.Black)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		pointConfigAt(t, t.TempDir())

		yaml := "white: random\npacing-ms: 25\nseed: 7\n"
		require.NoError(t, os.WriteFile(ConfigFile, []byte(yaml), 0o644))

		config, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, StrategyRandom, config.White)
		require.Equal(t, 25, config.PacingMS)
		require.EqualValues(t, 7, config.Seed)
		require.Equal(t, "stockfish", config.Engine.Cmd, "untouched fields keep their defaults")
	})

	t.Run("bad yaml is an error", func(t *testing.T) {
		pointConfigAt(t, t.TempDir())

		require.NoError(t, os.WriteFile(ConfigFile, []byte("white: ["), 0o644))

		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestDumpConfig(t *testing.T) {
	pointConfigAt(t, filepath.Join(t.TempDir(), "app"))

	want := DefaultConfig()
	want.PacingMS = 125
	require.NoError(t, DumpConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
