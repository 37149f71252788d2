package filehandler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotOpen is returned by WriteLine before Open succeeded or after Close
var ErrNotOpen = errors.New("file handler is not open")

// RunStampLayout formats the run start time embedded in append-mode
// file names, e.g. 2026-10-19_14_03_07.042.
const RunStampLayout = "2006-01-02_15_04_05.000"

// FileConfig holds configuration for a file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Rewrite truncates the file when it is opened; otherwise lines are
	// appended to whatever the file already holds
	Rewrite bool
	// BufferSize is the bufio buffer size (default: 4096)
	BufferSize int
	// Perm is the file mode used when creating the file (default: 0644)
	Perm os.FileMode
}

// RewritePath returns the fixed "current run" path for a family
func RewritePath(dir, family string) string {
	return filepath.Join(dir, family+".log")
}

// AppendPath returns the timestamped path for a family
func AppendPath(dir, family string, runStart time.Time) string {
	return filepath.Join(dir, family+"_"+runStart.Format(RunStampLayout)+".txt")
}

// FileHandler writes the lines of one category family to a file. It is
// opened lazily by the sink worker and used only from that goroutine.
type FileHandler struct {
	filename   string
	rewrite    bool
	perm       os.FileMode
	bufferSize int
	file       *os.File
	bufWriter  *bufio.Writer
	written    int64
	closed     bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// NewFileHandler creates a file handler. No file is touched until Open.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)
	return &FileHandler{
		filename:   cfg.Filename,
		rewrite:    cfg.Rewrite,
		perm:       cfg.Perm,
		bufferSize: cfg.BufferSize,
	}, nil
}

// Open creates or opens the file, truncating it in rewrite mode
func (h *FileHandler) Open() error {
	if h.file != nil {
		return nil
	}
	if h.closed {
		return ErrNotOpen
	}

	flags := os.O_CREATE | os.O_WRONLY
	if h.rewrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(h.filename, flags, h.perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.filename, err)
	}
	h.file = file
	h.bufWriter = bufio.NewWriterSize(file, h.bufferSize)
	return nil
}

// WriteLine writes line plus a newline and flushes it to the file
func (h *FileHandler) WriteLine(line []byte) error {
	if h.file == nil {
		return ErrNotOpen
	}

	n, err := h.bufWriter.Write(line)
	h.written += int64(n)
	if err != nil {
		return fmt.Errorf("write %s: %w", h.filename, err)
	}
	if err := h.bufWriter.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", h.filename, err)
	}
	h.written++
	if err := h.bufWriter.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", h.filename, err)
	}
	return nil
}

// Written returns the number of bytes accepted since Open
func (h *FileHandler) Written() int64 {
	return h.written
}

// Close flushes, syncs and closes the underlying file.
func (h *FileHandler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if h.file == nil {
		return nil
	}

	file := h.file
	h.file = nil

	flushErr := h.bufWriter.Flush()
	if flushErr != nil {
		file.Close()
		return flushErr
	}
	syncErr := file.Sync()
	if syncErr != nil {
		file.Close()
		return syncErr
	}
	return file.Close()
}
