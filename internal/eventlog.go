package internal

import (
	"slices"
	"sync"
)

// EventLog is the append-only sequence of event names fired during the
// process lifetime, kept for introspection. Entries are never rolled
// back. Mutex-guarded because the HTTP runtime dispatches concurrently.
type EventLog struct {
	mu    sync.Mutex
	names []string
}

func (l *EventLog) append(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

// Events returns a copy of the fired event names in order.
func (l *EventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.names)
}

// Len returns the number of fired events.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.names)
}
