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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/George6561/KingFischer/pkg/engine"
)

// Strategy names accepted in configuration.
const (
	StrategyEngine = "engine"
	StrategyRandom = "random"
)

// Config is the application configuration, read from ConfigFile.
type Config struct {
	Engine engine.Config `yaml:"engine"`

	// Strategy per side: "engine" or "random".
	White string `yaml:"white"`
	Black string `yaml:"black"`

	// Delay between turns in milliseconds, purely for observability.
	PacingMS int `yaml:"pacing-ms"`

	// Exploration constant for tree-search child selection.
	Exploration float64 `yaml:"exploration"`

	// Seed for the playout strategy; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// Output directory for saved games; empty selects the default.
	GamesDir string `yaml:"games-dir"`
}

// DefaultConfig mirrors the original pairing: the external engine plays
// White, the random playout mover plays Black.
func DefaultConfig() Config {
	return Config{
		Engine: engine.Config{
			Name:     "stockfish",
			Cmd:      "stockfish",
			MoveTime: 1000,
		},
		White:       StrategyEngine,
		Black:       StrategyRandom,
		PacingMS:    500,
		Exploration: 1.414,
	}
}

// LoadConfig reads ConfigFile, falling back to defaults when the file
// does not exist. A present but unreadable file is an error.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(ConfigFile)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("config: reading %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("config: parsing %s: %w", ConfigFile, err)
	}

	return config, nil
}

// DumpConfig writes the configuration, creating the app directory if
// needed.
func DumpConfig(config Config) error {
	TryMkdir(Directory)

	file, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.WriteFile(ConfigFile, file, Permissions); err != nil {
		return fmt.Errorf("config: writing %s: %w", ConfigFile, err)
	}
	return nil
}
