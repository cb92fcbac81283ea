package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bartekus/skillstub/internal/skill"
)

// Dispatcher resolves a skill name against a registry and returns the
// simulated outcome. It is synchronous: Execute runs to completion on
// the caller's goroutine.
type Dispatcher struct {
	registry *skill.Registry
	trace    io.Writer
	delay    bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTrace redirects the diagnostic lines (default os.Stdout).
func WithTrace(w io.Writer) Option {
	return func(d *Dispatcher) { d.trace = w }
}

// WithDelay enables a real timed wait for the descriptor's duration.
// Off by default: the stub usually only pretends time passed.
func WithDelay(enabled bool) Option {
	return func(d *Dispatcher) { d.delay = enabled }
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *skill.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		trace:    os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Execute dispatches a single skill by name.
//
// Unknown names (the empty string included) return StatusError after a
// diagnostic. Known names return the descriptor's configured outcome,
// after the configured wait when delay is enabled. A wait cut short by
// ctx returns StatusError rather than swallowing the interruption.
func (d *Dispatcher) Execute(ctx context.Context, name string) skill.Status {
	fmt.Fprintf(d.trace, "Executing the skill: %s\n", name)

	desc, ok := d.registry.Lookup(name)
	if !ok {
		fmt.Fprintf(d.trace, "Node %s not known\n", name)
		return skill.StatusError
	}

	if d.delay && desc.Duration > 0 {
		if err := wait(ctx, desc.Duration); err != nil {
			fmt.Fprintf(d.trace, "Skill %s interrupted: %v\n", name, err)
			return skill.StatusError
		}
	}

	return desc.Outcome
}

// wait blocks for dur or until ctx is done, whichever comes first.
func wait(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
