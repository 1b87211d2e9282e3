// Package listeners holds the example application's event listeners.
// File names double as listener identifiers for directory-filtered
// discovery: audit.go registers under "audit".
package listeners

import (
	"log/slog"

	"github.com/anvilworks/anvil"
)

// Audit logs every lifecycle event around an action invocation.
type Audit struct {
	app *anvil.App
}

// NewAudit constructs a fresh listener; one instance lives per trigger.
func NewAudit() anvil.Listener {
	return &Audit{}
}

func (a *Audit) SetApp(app *anvil.App) {
	a.app = app
}

func (a *Audit) Events() []string {
	return []string{anvil.EventActionBefore, anvil.EventActionAfter}
}

func (a *Audit) Handle(event string, payload ...any) error {
	a.app.Logger().Info("lifecycle event",
		slog.String("event", event),
		slog.Int("fired", len(a.app.Events())))
	_ = payload // carries (controller, view) for listeners that need them
	return nil
}
