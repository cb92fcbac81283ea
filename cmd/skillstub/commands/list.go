// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if listJSON {
			type entry struct {
				Name       string `json:"name"`
				Outcome    string `json:"outcome"`
				DurationMS int64  `json:"duration_ms"`
			}
			entries := make([]entry, 0, reg.Len())
			for _, name := range reg.Names() {
				d, _ := reg.Lookup(name)
				entries = append(entries, entry{
					Name:       d.Name,
					Outcome:    d.Outcome.String(),
					DurationMS: d.Duration.Milliseconds(),
				})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"skills": entries})
		}

		for _, name := range reg.Names() {
			d, _ := reg.Lookup(name)
			fmt.Fprintf(out, "%s\t%s\t%dms\n", d.Name, d.Outcome, d.Duration.Milliseconds())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
