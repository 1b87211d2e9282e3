package internal

import (
	"io/fs"
	"slices"
	"strings"
)

// Listener handles one or more named lifecycle events. SetApp receives a
// back-reference to the owning application before each Handle call.
// Events returns the event names the listener handles: the capability set
// the listener itself adds, declared explicitly instead of discovered by
// reflection. Handle is invoked with the event name and the trigger
// payload forwarded positionally.
type Listener interface {
	SetApp(app *App)
	Events() []string
	Handle(event string, payload ...any) error
}

// ListenerFactory constructs a fresh listener instance. Instantiation
// happens per trigger call, so listeners must not assume shared state
// across events.
type ListenerFactory func() Listener

// ListenerRegistry maps listener identifiers to the event names they
// handle. Identifiers are kept sorted for deterministic trigger order.
// The registry is built at startup, read-only during dispatch, and
// rebuildable via (*App).DiscoverListeners.
type ListenerRegistry struct {
	order  []string
	events map[string]map[string]struct{}
}

// Listeners returns the registered identifiers in sorted order.
func (r *ListenerRegistry) Listeners() []string {
	return slices.Clone(r.order)
}

// EventsOf returns the sorted event names the identified listener handles.
func (r *ListenerRegistry) EventsOf(name string) []string {
	set, ok := r.events[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for ev := range set {
		out = append(out, ev)
	}
	slices.Sort(out)
	return out
}

// Handles reports whether the identified listener handles the event.
func (r *ListenerRegistry) Handles(name, event string) bool {
	_, ok := r.events[name][event]
	return ok
}

// Len returns the number of registered listeners.
func (r *ListenerRegistry) Len() int {
	return len(r.order)
}

// buildListenerRegistry assembles the registry from the registered
// factories. When a listener directory is configured, only registrations
// whose "<identifier>.go" source unit exists there are active: a missing
// directory yields an empty registry and unrelated entries are skipped
// silently. Each factory is invoked once to query the declared event set.
func buildListenerRegistry(factories map[string]ListenerFactory, fsys fs.FS, dir string) *ListenerRegistry {
	reg := &ListenerRegistry{events: make(map[string]map[string]struct{})}

	active := make([]string, 0, len(factories))
	if fsys == nil {
		for name := range factories {
			active = append(active, name)
		}
	} else {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return reg
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name, ok := strings.CutSuffix(e.Name(), ".go")
			if !ok || name == "" {
				continue
			}
			if _, registered := factories[name]; !registered {
				continue
			}
			active = append(active, name)
		}
	}

	slices.Sort(active)
	for _, name := range active {
		set := make(map[string]struct{})
		for _, ev := range factories[name]().Events() {
			if ev != "" {
				set[ev] = struct{}{}
			}
		}
		reg.events[name] = set
		reg.order = append(reg.order, name)
	}
	return reg
}

// Trigger appends the event name to the event log, then notifies every
// listener handling the event in sorted identifier order: each is freshly
// instantiated, bound to the application via SetApp, and invoked with the
// payload forwarded unchanged. A listener error propagates immediately and
// unmodified; Trigger does no recovery.
func (a *App) Trigger(event string, payload ...any) error {
	a.eventLog.append(event)

	reg := a.listenerRegistry()
	for _, name := range reg.order {
		if !reg.Handles(name, event) {
			continue
		}
		l := a.listenerFactories[name]()
		l.SetApp(a)
		if err := l.Handle(event, payload...); err != nil {
			return err
		}
	}
	return nil
}
