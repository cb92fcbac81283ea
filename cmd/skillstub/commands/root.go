// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the skillstub root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("SKILLSTUB_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "skillstub",
		Short:         "skillstub - Dummy skill dispatch for behavior-execution hosts",
		Long:          "skillstub simulates named skills with predetermined outcomes and durations, so a host orchestrator can exercise its dispatch and status handling without real skills.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&registryPath, "registry", "", "path to a YAML skill registry (default: skillstub.yaml found upward, else built-in)")
	cmd.PersistentFlags().StringVar(&stateDir, "state-dir", ".skillstub/run", "directory to store dispatch state")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of skillstub",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "skillstub version %s\n", version)
		},
	})

	cmd.AddCommand(execCmd)
	cmd.AddCommand(listCmd)
	cmd.AddCommand(reportCmd)
	cmd.AddCommand(resetCmd)

	return cmd
}
