package internal

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnknownController reports a controller name with no registered
// factory. This is fatal for the request and propagates to the caller,
// unlike an unresolvable action which silently falls back to the
// not-found controller.
var ErrUnknownController = errors.New("anvil: unknown controller")

// panicStackSize caps the stack trace captured by PanicError.
const panicStackSize = 4096

// PanicError is the structured form of a panic raised during dispatch.
// It carries the panic value, the originating code location, and the
// stack trace, so low-level failures surface as inspectable errors
// instead of crashing the process.
type PanicError struct {
	Value any
	File  string
	Line  int
	Stack []byte
}

func (e *PanicError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("anvil: panic during dispatch: %v", e.Value)
	}
	return fmt.Sprintf("anvil: panic during dispatch: %v (%s:%d)", e.Value, e.File, e.Line)
}

// AsPanicError extracts a PanicError from err, if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	ok := errors.As(err, &pe)
	return pe, ok
}

// newPanicError captures the current stack and locates the first frame
// outside the runtime as the panic origin. skip counts callers to drop,
// not including newPanicError itself.
func newPanicError(value any, skip int) *PanicError {
	stack := make([]byte, panicStackSize)
	stack = stack[:runtime.Stack(stack, false)]
	pe := &PanicError{Value: value, Stack: stack}

	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			pe.File, pe.Line = frame.File, frame.Line
			break
		}
		if !more {
			break
		}
	}
	return pe
}
