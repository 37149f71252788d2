package benchmark

import (
	"github.com/philipp01105/tslog/handler"
)

// noopHandler swallows console lines so only the file path is measured
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) WriteLine(line []byte) error {
	_ = len(line)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
