// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/bf2save/internal/config"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	dir        string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var (
		flags globalFlags
		app   = &App{}
	)

	rootCmd := &cobra.Command{
		Use:   "bf2save",
		Short: "Promote a Battlefield 2 save file to the active slot",
		Long: `bf2save lists the bf2savefile* saves of a directory in natural order
(bf2savefile2 before bf2savefile10) and copies the one you choose over
bf2savefile.sav. The last directory, file and pin preference are kept in
config.txt next to the executable.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file path (default: .bf2save.yaml or ~/.bf2save/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.dir, "dir", "", "Save directory (default: last used directory, else current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newListCommand(app),
		newPromoteCommand(app),
		newPickCommand(app),
		newStateCommand(app),
		newPinCommand(app),
		newWatchCommand(app),
		newHistoryCommand(app),
	)

	return rootCmd
}

// setup loads configuration and wires the shared collaborators.
func (a *App) setup(cmd *cobra.Command, flags globalFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.LogLevel()
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	a.configure(cfg, flags.dir)
	a.In = cmd.InOrStdin()
	a.Out = cmd.OutOrStdout()
	a.Err = cmd.ErrOrStderr()
	return nil
}
