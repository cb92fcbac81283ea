// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bartekus/skillstub/cmd/skillstub/internal/clierr"
	"github.com/bartekus/skillstub/internal/dispatch"
	"github.com/bartekus/skillstub/internal/skill"
)

// tickInterval paces the --step loop so a timed skill doesn't spin.
const tickInterval = 10 * time.Millisecond

var (
	registryPath string
	stateDir     string

	execDelay    bool
	execStep     bool
	execMaxTicks int
)

var execCmd = &cobra.Command{
	Use:   "exec <skill> [skill...]",
	Short: "Dispatch one or more skills and report their status",
	Long: `Dispatch each named skill in order against the configured registry.
Results are persisted under the state directory so "report" can show them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		store := dispatch.NewStateStore(stateDir)
		out := cmd.OutOrStdout()

		var failed []string
		worst := skill.StatusSuccess

		for _, name := range args {
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			fmt.Fprintf(out, "SKILL: %s\n", name)
			fmt.Fprintln(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

			rec := runOne(cmd, reg, name)

			if err := store.WriteRecord(rec); err != nil {
				return fmt.Errorf("writing record for %s: %w", name, err)
			}

			fmt.Fprintf(out, "%s: %s\n", rec.Status, name)
			if rec.Status != skill.StatusSuccess.String() {
				failed = append(failed, name)
			}
			worst = worse(worst, rec)
		}

		last := dispatch.LastRun{
			RunID:  uuid.NewString(),
			Status: "pass",
			Skills: args,
			Failed: failed,
		}
		if len(failed) > 0 {
			last.Status = "fail"
		}
		if err := store.WriteLastRun(last); err != nil {
			return fmt.Errorf("writing last run: %w", err)
		}

		return clierr.FromStatus(worst, fmt.Sprintf("dispatch failed: %v", failed))
	},
}

func init() {
	execCmd.Flags().BoolVar(&execDelay, "delay", false, "actually wait each skill's configured duration")
	execCmd.Flags().BoolVar(&execStep, "step", false, "run through the tick engine instead of one-shot dispatch")
	execCmd.Flags().IntVar(&execMaxTicks, "max-ticks", 0, "with --step, halt a skill still RUNNING after this many ticks (0 = no limit)")
}

// runOne executes a single skill, one-shot or tick-driven, and returns
// the record to persist.
func runOne(cmd *cobra.Command, reg *skill.Registry, name string) dispatch.Record {
	out := cmd.OutOrStdout()
	desc, _ := reg.Lookup(name)

	if !execStep {
		d := dispatch.NewDispatcher(reg, dispatch.WithTrace(out), dispatch.WithDelay(execDelay))
		status := d.Execute(cmd.Context(), name)
		return dispatch.NewRecord(skill.Descriptor{Name: name, Outcome: desc.Outcome, Duration: desc.Duration}, status)
	}

	eng := dispatch.NewEngine(reg, dispatch.WithEngineTrace(out))
	status := eng.Tick(name)
	ticks := 1
	for status == skill.StatusRunning {
		if execMaxTicks > 0 && ticks >= execMaxTicks {
			eng.Halt(name)
			status, _ = terminalStatus(eng, name)
			break
		}
		time.Sleep(tickInterval)
		status = eng.Tick(name)
		ticks++
	}

	rec := dispatch.NewRecord(skill.Descriptor{Name: name, Outcome: desc.Outcome, Duration: desc.Duration}, status)
	if snap, ok := eng.Snapshot(name); ok && snap.Halted {
		rec.Halted = true
		rec.Note = fmt.Sprintf("halted after %d ticks", ticks)
	}
	return rec
}

func terminalStatus(eng *dispatch.Engine, name string) (skill.Status, bool) {
	snap, ok := eng.Snapshot(name)
	if !ok {
		return skill.StatusError, false
	}
	return snap.Status, true
}

// worse keeps the most severe status seen: ERROR dominates FAILURE
// dominates SUCCESS, matching the exit-code contract.
func worse(current skill.Status, rec dispatch.Record) skill.Status {
	switch rec.Status {
	case skill.StatusError.String():
		return skill.StatusError
	case skill.StatusFailure.String():
		if current != skill.StatusError {
			return skill.StatusFailure
		}
	}
	return current
}

// loadRegistry resolves the registry in order: --registry flag, upward
// skillstub.yaml search, built-in defaults.
func loadRegistry() (*skill.Registry, error) {
	if registryPath != "" {
		return skill.LoadRegistry(registryPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	found, err := skill.FindConfig(wd)
	if err != nil {
		return nil, err
	}
	if found != "" {
		return skill.LoadRegistry(found)
	}

	return skill.Default(), nil
}
