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

	"github.com/spf13/cobra"

	"github.com/sirseerhq/bf2save/internal/history"
	"github.com/sirseerhq/bf2save/internal/output"
)

func newHistoryCommand(app *App) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent promotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.Read(app.HistoryPath, limit)
			if err != nil {
				return err
			}

			if asJSON {
				writer := output.NewWriter(app.Out)
				defer writer.Close()
				for _, entry := range entries {
					if err := writer.Write(entry); err != nil {
						return err
					}
				}
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(app.Err, "No promote history")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintln(app.Out, formatEntry(entry))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output NDJSON records")

	return cmd
}

func formatEntry(e history.Entry) string {
	source := e.Source
	if source == "" {
		source = "(none)"
	}
	line := fmt.Sprintf("%s  %-7s  %s", e.StartedAt.Local().Format("2006-01-02 15:04:05"), e.Outcome, source)
	if e.Outcome == "success" {
		line += fmt.Sprintf(" -> %s (%d bytes)", e.Destination, e.Bytes)
	} else if e.Reason != "" {
		line += ": " + e.Reason
	}
	if !e.StateSaved {
		line += " [state not saved]"
	}
	return line
}
