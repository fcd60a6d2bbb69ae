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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/George6561/KingFischer/pkg/common"
)

// kingfischer config
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`config prints the effective configuration, which is the
			built-in defaults overlaid with whatever the configuration
			file provides.

			With --init the effective configuration is written to the
			configuration file, creating it if necessary, so that it
			can be edited.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := common.LoadConfig()
			if err != nil {
				return err
			}

			if cmd.Flag("init").Changed {
				if err := common.DumpConfig(config); err != nil {
					return err
				}

				logrus.Infof("Configuration written to \x1b[34m%s\x1b[0m", common.ConfigFile)
				return nil
			}

			out, err := yaml.Marshal(config)
			if err != nil {
				return err
			}

			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().Bool("init", false, "Write the configuration file")

	return cmd
}
