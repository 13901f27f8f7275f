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
	"strings"

	"github.com/spf13/cobra"
)

func newStateCommand(app *App) *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted directory, file and pin preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Load()
			fmt.Fprintf(app.Out, "directory: %s\n", st.Directory)
			fmt.Fprintf(app.Out, "file:      %s\n", st.FileName)
			fmt.Fprintf(app.Out, "pin:       %s\n", onOff(st.Pin))
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.Out, app.Store.Path())
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect the persisted state",
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}
	cmd.AddCommand(show, path)

	return cmd
}

func newPinCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "pin [on|off]",
		Short:     "Set or toggle the pin preference",
		Long:      `Set the pin preference, or toggle it when no argument is given. The directory and file in the state are kept.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Load()

			if len(args) == 0 {
				st.Pin = !st.Pin
			} else {
				pin, err := parsePinArg(args[0])
				if err != nil {
					return err
				}
				st.Pin = pin
			}

			if err := app.Store.Save(st); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "pin: %s\n", onOff(st.Pin))
			return nil
		},
	}
}

func parsePinArg(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "yes":
		return true, nil
	case "off", "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid pin value %q (want on or off)", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
