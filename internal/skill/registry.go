package skill

import (
	"fmt"
	"sort"
	"time"
)

// Descriptor associates a skill name with the outcome and elapsed
// duration its execution should simulate.
type Descriptor struct {
	Name     string
	Outcome  Status
	Duration time.Duration
}

// Registry holds the mapping from skill name to descriptor. It is
// immutable after construction, so concurrent lookups need no locking.
type Registry struct {
	byName map[string]Descriptor
	names  []string
}

// NewRegistry builds a registry from the given descriptors.
// Names are matched exactly and case-sensitively at lookup time, and a
// duplicate name is a construction error rather than a silent
// first-entry-wins: the original chained-comparison dispatch this
// replaces made that class of bug too easy.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	byName := make(map[string]Descriptor, len(descs))
	for _, d := range descs {
		if d.Name == "" {
			return nil, fmt.Errorf("skill with empty name")
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate skill name %q", d.Name)
		}
		if d.Outcome != StatusSuccess && d.Outcome != StatusFailure {
			return nil, fmt.Errorf("skill %q: outcome must be SUCCESS or FAILURE, got %s", d.Name, d.Outcome)
		}
		if d.Duration < 0 {
			return nil, fmt.Errorf("skill %q: negative duration", d.Name)
		}
		byName[d.Name] = d
	}

	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)

	return &Registry{byName: byName, names: names}, nil
}

// Lookup returns the descriptor for an exact, case-sensitive name
// match. No partial or prefix matching.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns all registered skill names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.byName)
}

// Default returns the built-in registry: two one-second actions and two
// instant conditions.
func Default() *Registry {
	r, err := NewRegistry(
		Descriptor{Name: "Action1SecondSuccess", Outcome: StatusSuccess, Duration: time.Second},
		Descriptor{Name: "Action1SecondFailure", Outcome: StatusFailure, Duration: time.Second},
		Descriptor{Name: "ConditionTrue", Outcome: StatusSuccess},
		Descriptor{Name: "ConditionFalse", Outcome: StatusFailure},
	)
	if err != nil {
		// The built-in set is statically valid.
		panic(err)
	}
	return r
}
