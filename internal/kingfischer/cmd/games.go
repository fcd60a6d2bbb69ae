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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/George6561/KingFischer/pkg/common"
)

// kingfischer games
func Games() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games [name]",
		Short: "Lists the saved games, or prints one",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := common.LoadConfig()
			if err != nil {
				return err
			}

			dir := config.GamesDir
			if dir == "" {
				dir = common.GamesDirectory
			}

			if len(args) == 1 {
				game, err := os.ReadFile(filepath.Join(dir, args[0]))
				if err != nil {
					return err
				}

				fmt.Print(string(game))
				return nil
			}

			entries, err := os.ReadDir(dir)
			if err != nil && !os.IsNotExist(err) {
				return err
			}

			names := make([]string, 0, len(entries))
			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
					continue
				}
				names = append(names, entry.Name())
			}

			if len(names) == 0 {
				fmt.Println("\x1b[31mNo Saved Games.\x1b[0m")
				return nil
			}

			sort.Strings(names)

			fmt.Println("\x1b[32mSaved Games\x1b[0m:")
			for _, name := range names {
				fmt.Printf("- \x1b[34m%s\x1b[0m\n", name)
			}

			return nil
		},
	}

	return cmd
}
