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
	"io"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/bf2save/internal/output"
)

// listRecord is one NDJSON line of `list --json`.
type listRecord struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

func newListCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the save files of the directory in natural order",
		Long: `List the save files of the directory in natural order.

The file promoted last is marked with *. Use --json for one NDJSON record
per file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Load()
			dir := app.resolveDir(st)
			names := app.candidates(dir)
			selected := preselect(names, st)

			if asJSON {
				return writeListJSON(app.Out, names, selected)
			}
			if len(names) == 0 {
				fmt.Fprintf(app.Err, "No save files found in %s\n", dir)
				return nil
			}
			printList(app.Out, names, selected)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output NDJSON records")

	return cmd
}

// printList writes the numbered candidates, marking selected with *.
func printList(w io.Writer, names []string, selected string) {
	for i, name := range names {
		mark := " "
		if name == selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %3d  %s\n", mark, i+1, name)
	}
}

func writeListJSON(w io.Writer, names []string, selected string) error {
	var writer output.RecordWriter = output.NewWriter(w)
	defer writer.Close()

	for i, name := range names {
		if err := writer.Write(listRecord{Index: i + 1, Name: name, Selected: name == selected}); err != nil {
			return err
		}
	}
	return nil
}
