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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
)

func newPromoteCommand(app *App) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "promote [name]",
		Short: "Copy a save file over the active save",
		Long: `Copy a save file over the active save (bf2savefile.sav by default).

The file is chosen by name (it must be one of the listed save files), by
its 1-based position in "bf2save list" (--index), or, with neither, the
file promoted last if it is still present.
The directory, file and pin preference are saved even when the copy fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && cmd.Flags().Changed("index") {
				return fmt.Errorf("give either a file name or --index, not both")
			}

			st := app.Store.Load()
			dir := app.resolveDir(st)

			var name string
			switch {
			case len(args) == 1:
				name = args[0]
				if !slices.Contains(app.candidates(dir), name) {
					reason := fmt.Errorf("%w: %s is not a save file in %s", bferrors.ErrSourceMissing, name, dir)
					return app.rejectPromote(dir, name, st.Pin, reason)
				}
			case cmd.Flags().Changed("index"):
				names := app.candidates(dir)
				if index >= 1 && index <= len(names) {
					name = names[index-1]
				} else {
					slog.Warn("list index out of range", "index", index, "candidates", len(names))
				}
			default:
				name = preselect(app.candidates(dir), st)
			}

			return app.runPromote(dir, name, st.Pin)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "n", 0, "Promote the Nth file of the list (1-based)")

	return cmd
}

func newPickCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a save file interactively and promote it",
		Long: `Print the numbered list of save files and read a choice from stdin.

Enter a number or a file name. An empty line takes the default, which is the
file promoted last if it is still present, otherwise the first file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Load()
			dir := app.resolveDir(st)
			names := app.candidates(dir)

			if len(names) == 0 {
				fmt.Fprintf(app.Err, "No save files found in %s\n", dir)
				return app.runPromote(dir, "", st.Pin)
			}

			def := preselect(names, st)
			if def == "" {
				def = names[0]
			}

			printList(app.Out, names, def)
			fmt.Fprintf(app.Out, "Select [%d]: ", slices.Index(names, def)+1)

			name, err := readChoice(app.In, names, def)
			if err != nil {
				return err
			}
			return app.runPromote(dir, name, st.Pin)
		},
	}
}

// readChoice reads one line and resolves it to a candidate: a 1-based
// index, an exact file name, or def for an empty line.
func readChoice(r io.Reader, names []string, def string) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return def, nil
	}
	if n, convErr := strconv.Atoi(choice); convErr == nil {
		if n < 1 || n > len(names) {
			return "", fmt.Errorf("invalid choice %d: pick a number between 1 and %d", n, len(names))
		}
		return names[n-1], nil
	}
	if slices.Contains(names, choice) {
		return choice, nil
	}
	return "", fmt.Errorf("invalid choice %q: not in the list", choice)
}
