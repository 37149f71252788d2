package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/tslog/handler"
)

// MultiHandler hands every line to each of its children in order
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// WriteLine writes line to every child. A failing child does not stop
// the others; all failures are returned together.
func (h *MultiHandler) WriteLine(line []byte) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.WriteLine(line))
	}
	return err
}

// Close closes all children
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}

// Open opens every child that implements handler.Opener. The sink
// worker calls it before the first line.
func (h *MultiHandler) Open() error {
	var err error
	for _, child := range h.handlers {
		if o, ok := child.(handler.Opener); ok {
			err = multierr.Append(err, o.Open())
		}
	}
	return err
}
