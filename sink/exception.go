package sink

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StackText renders err the way EXCEPTION entries carry it: the message
// followed by stack text. Errors built with github.com/pkg/errors carry
// the stack of their creation; anything else gets the stack of the
// current goroutine.
func StackText(err error) string {
	if err == nil {
		return ""
	}
	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error() + "\n" + string(debug.Stack())
}
