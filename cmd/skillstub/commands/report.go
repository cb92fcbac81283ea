// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/skillstub/internal/dispatch"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the last dispatch run",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := dispatch.NewStateStore(stateDir)
		last, err := store.ReadLastRun()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if reportJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(last)
		}

		if last == nil {
			fmt.Fprintln(out, "No run state found.")
			return nil
		}

		fmt.Fprintf(out, "Run:    %s\n", last.RunID)
		fmt.Fprintf(out, "Status: %s\n", last.Status)
		if len(last.Failed) > 0 {
			fmt.Fprintln(out, "Failed:")
			for _, f := range last.Failed {
				fmt.Fprintf(out, "  - %s\n", f)
			}
		} else {
			fmt.Fprintln(out, "All succeeded.")
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear dispatch state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch.NewStateStore(stateDir).Reset()
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
}
