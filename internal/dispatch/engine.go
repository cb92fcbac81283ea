package dispatch

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bartekus/skillstub/internal/skill"
)

// Instance is a snapshot of one skill's tick-driven execution.
type Instance struct {
	ID      string
	Skill   string
	Started time.Time
	Status  skill.Status
	Halted  bool
}

// Engine runs skills under the tick/halt protocol. Where Dispatcher
// resolves a skill in one shot, the engine advances it one Tick at a
// time: RUNNING until the configured duration has elapsed, then the
// descriptor outcome, latched.
//
// One mutex guards the whole instance map, so a Halt arriving
// concurrently with a Tick for the same skill never observes torn
// state.
type Engine struct {
	registry *skill.Registry
	trace    io.Writer
	now      func() time.Time

	mu        sync.Mutex
	instances map[string]*Instance
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineTrace redirects the diagnostic lines (default os.Stdout).
func WithEngineTrace(w io.Writer) EngineOption {
	return func(e *Engine) { e.trace = w }
}

// WithNow overrides the engine clock. Tests use this to elapse a
// skill's duration without sleeping.
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a tick engine over the given registry.
func NewEngine(registry *skill.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry:  registry,
		trace:     os.Stdout,
		now:       time.Now,
		instances: make(map[string]*Instance),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tick advances the named skill by one step.
//
// The first tick for a name starts an instance. Ticks return RUNNING
// until start+duration is reached, then the descriptor outcome; once
// terminal, the status is latched and later ticks return it without
// re-executing. Unknown names return ERROR and start nothing.
func (e *Engine) Tick(name string) skill.Status {
	fmt.Fprintf(e.trace, "Ticking the skill: %s\n", name)

	desc, ok := e.registry.Lookup(name)
	if !ok {
		fmt.Fprintf(e.trace, "Node %s not known\n", name)
		return skill.StatusError
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.instances[name]
	if !ok {
		inst = &Instance{
			ID:      uuid.NewString(),
			Skill:   name,
			Started: e.now(),
			Status:  skill.StatusRunning,
		}
		e.instances[name] = inst
	}

	if inst.Status.Terminal() {
		return inst.Status
	}

	if e.now().Sub(inst.Started) >= desc.Duration {
		inst.Status = desc.Outcome
	}
	return inst.Status
}

// Halt requests early termination of an in-progress skill. It is
// idempotent: halting an unknown or already-terminal skill is a no-op.
// A halted instance latches FAILURE; Snapshot keeps it distinguishable
// from a natural failure.
func (e *Engine) Halt(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.instances[name]
	if !ok || inst.Status.Terminal() {
		return
	}

	fmt.Fprintf(e.trace, "Halting the skill: %s\n", name)
	inst.Status = skill.StatusFailure
	inst.Halted = true
}

// Snapshot returns a copy of the named skill's instance state, if one
// has been started.
func (e *Engine) Snapshot(name string) (Instance, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.instances[name]
	if !ok {
		return Instance{}, false
	}
	return *inst, true
}

// Reset drops the named skill's instance so a later Tick starts fresh.
func (e *Engine) Reset(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.instances, name)
}

// ResetAll drops every instance.
func (e *Engine) ResetAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.instances = make(map[string]*Instance)
}
