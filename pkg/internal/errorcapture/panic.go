package errorcapture

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// CapturePanic must be deferred directly. It reports a panic in flight and then
// panics again with the same value, so the process fails as it would have without it.
//
//	defer registry.CapturePanic()
func (r *Registry) CapturePanic() {
	v := recover()
	if v == nil {
		return
	}
	r.Report(uncaughtFromPanic(v, debug.Stack()))
	panic(v)
}

// Go runs fn on a new goroutine with CapturePanic deferred.
func (r *Registry) Go(fn func()) {
	go func() {
		defer r.CapturePanic()
		fn()
	}()
}

func uncaughtFromPanic(v interface{}, stack []byte) types.UncaughtError {
	e := types.UncaughtError{
		Message: fmt.Sprint(v),
		Stack:   string(stack),
	}
	if err, ok := v.(error); ok {
		e.Err = err
	}
	if file, line, ok := panicSite(); ok {
		e.URL = file
		e.Line = line
	}
	return e
}

// panicSite finds the frame that raised the panic: the first frame outside the
// runtime package below runtime.gopanic.
func panicSite() (string, int, bool) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	panicking := false
	for {
		frame, more := frames.Next()
		switch {
		case frame.Function == "runtime.gopanic":
			panicking = true
		case panicking && !strings.HasPrefix(frame.Function, "runtime."):
			return frame.File, frame.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}
