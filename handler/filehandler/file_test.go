package filehandler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileHandler_Rewrite(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.log")
	if err := os.WriteFile(filename, []byte("stale line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Filename: filename, Rewrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := h.WriteLine([]byte("fresh")); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}

	// Flushed before Close
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh\n" {
		t.Errorf("Expected truncated file with one line, got %q", data)
	}
	if h.Written() != int64(len("fresh\n")) {
		t.Errorf("Written() = %d", h.Written())
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestFileHandler_Append(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(filename, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Open(); err != nil {
		t.Fatal(err)
	}
	h.WriteLine([]byte("one"))
	h.WriteLine([]byte("two"))
	h.Close()

	data, _ := os.ReadFile(filename)
	if string(data) != "previous run\none\ntwo\n" {
		t.Errorf("Expected appended content, got %q", data)
	}
}

func TestFileHandler_NotOpen(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "x.log")})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.WriteLine([]byte("early")); !errors.Is(err, ErrNotOpen) {
		t.Errorf("WriteLine before Open = %v, want ErrNotOpen", err)
	}

	h.Open()
	h.Close()
	if err := h.WriteLine([]byte("late")); !errors.Is(err, ErrNotOpen) {
		t.Errorf("WriteLine after Close = %v, want ErrNotOpen", err)
	}
	if err := h.Open(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Open after Close = %v, want ErrNotOpen", err)
	}
}

func TestFileHandler_CloseIdempotent(t *testing.T) {
	h, _ := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "x.log")})

	// Never opened
	if err := h.Close(); err != nil {
		t.Errorf("Close of unopened handler failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestFileHandler_OpenFailure(t *testing.T) {
	h, _ := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "missing", "x.log")})
	if err := h.Open(); err == nil {
		t.Fatal("Expected error opening a file in a missing directory")
	}
}

func TestNewFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Error("Expected error for empty filename")
	}
}

func TestPaths(t *testing.T) {
	start := time.Date(2026, 10, 19, 14, 3, 7, 42*int(time.Millisecond), time.UTC)

	if got := RewritePath("logs", "tslog"); got != filepath.Join("logs", "tslog.log") {
		t.Errorf("RewritePath() = %q", got)
	}
	want := filepath.Join("logs", "results_2026-10-19_14_03_07.042.txt")
	if got := AppendPath("logs", "results", start); got != want {
		t.Errorf("AppendPath() = %q, want %q", got, want)
	}
}
