package internal

import (
	"fmt"
	"io"
	"log/slog"
)

// Lifecycle event names fired around every action invocation.
const (
	EventActionBefore = "actionBefore"
	EventActionAfter  = "actionAfter"
)

// Dispatch runs one request through the front controller: parse the
// target into segments, instantiate the controller named by the first
// segment, resolve the action through the controller's custom routes and
// the default positional policy, fire actionBefore, invoke the action,
// fire actionAfter. Output written by the action goes to out.
//
// Unresolvable actions degrade to the not-found controller; an unknown
// controller name or a listener error is fatal for the request and
// returned to the caller. A panic anywhere in the pass is converted into
// a *PanicError rather than crashing the process. Dispatch is synchronous
// and makes no retries.
func (a *App) Dispatch(target string, out io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r, 2)
		}
	}()

	segments := ParsePath(target)

	name := DefaultController
	if len(segments) > 0 {
		name = segments[0]
	}

	ctrl, err := a.makeController(name)
	if err != nil {
		return err
	}

	res := resolveAction(ctrl, name, segments)
	if res.Controller != name {
		if ctrl, err = a.makeController(res.Controller); err != nil {
			return err
		}
	}

	action, ok := ctrl.Actions()[res.Action]
	if !ok || action == nil {
		return fmt.Errorf("%w: %q has no action %q", ErrUnknownController, res.Controller, res.Action)
	}

	a.logger.Debug("dispatching",
		slog.String("controller", res.Controller),
		slog.String("action", res.Action))

	c := newContext(a, res.Args, out)

	if err := a.Trigger(EventActionBefore, ctrl, c.View()); err != nil {
		return err
	}
	if err := action(c); err != nil {
		return err
	}
	return a.Trigger(EventActionAfter, ctrl, c.View())
}
