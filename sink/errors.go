package sink

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted marks a producer or shutdown wait released by its
	// context before it could finish.
	ErrInterrupted = errors.New("tslog: interrupted")

	// ErrGraceExpired is returned by Shutdown when the grace window
	// elapsed before the worker signalled completion.
	ErrGraceExpired = errors.New("tslog: grace window expired before the worker finished")
)

// InterruptedError reports which operation was interrupted and why
type InterruptedError struct {
	Op    string
	Cause error
}

// Error implements error
func (e *InterruptedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("tslog: %s interrupted", e.Op)
	}
	return fmt.Sprintf("tslog: %s interrupted: %v", e.Op, e.Cause)
}

// Unwrap exposes both ErrInterrupted and the context cause to errors.Is
func (e *InterruptedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInterrupted}
	}
	return []error{ErrInterrupted, e.Cause}
}
