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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/bf2save/internal/watch"
)

func newWatchCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "List the save files and re-list them whenever they change",
		Long: `List the save files of the directory, then print the list again each time
a save is added, removed or renamed. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st := app.Store.Load()
			dir := app.resolveDir(st)

			w := watch.New(dir, app.Config.Candidates.Prefix, app.Config.WatchDebounce())
			return w.Run(ctx, func(names []string) {
				fmt.Fprintf(app.Out, "# %s %s\n", time.Now().Format(time.TimeOnly), dir)
				if len(names) == 0 {
					fmt.Fprintln(app.Out, "(no save files)")
					return
				}
				printList(app.Out, names, preselect(names, st))
			})
		},
	}
}
