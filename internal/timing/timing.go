// Package timing collects named wall-clock sections for the per-stage
// summary the CLI prints after a run.
package timing

import (
	"sort"
	"time"
)

// Timer accumulates elapsed durations under section names. Not safe for
// concurrent use; the CLI drives it from a single goroutine.
type Timer struct {
	sections map[string]time.Duration
	started  map[string]time.Time
}

// New creates an empty Timer.
func New() *Timer {
	return &Timer{
		sections: make(map[string]time.Duration),
		started:  make(map[string]time.Time),
	}
}

// Start marks the beginning of a named section.
func (t *Timer) Start(name string) {
	t.started[name] = time.Now()
}

// Stop closes a started section and accumulates its duration. Stopping a
// section that was never started is a no-op.
func (t *Timer) Stop(name string) {
	start, ok := t.started[name]
	if !ok {
		return
	}
	delete(t.started, name)
	t.sections[name] += time.Since(start)
}

// Section runs fn under the given section name.
func (t *Timer) Section(name string, fn func() error) error {
	t.Start(name)
	defer t.Stop(name)
	return fn()
}

// Times returns the accumulated durations keyed by section name.
func (t *Timer) Times() map[string]time.Duration {
	out := make(map[string]time.Duration, len(t.sections))
	for name, d := range t.sections {
		out[name] = d
	}
	return out
}

// Names returns the recorded section names in sorted order, for stable
// summary output.
func (t *Timer) Names() []string {
	names := make([]string, 0, len(t.sections))
	for name := range t.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
