package multihandler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"

	"github.com/philipp01105/tslog/handler/consolehandler"
	"github.com/philipp01105/tslog/handler/filehandler"
)

type failingHandler struct {
	err    error
	closed int
}

func (f *failingHandler) WriteLine([]byte) error { return f.err }
func (f *failingHandler) Close() error {
	f.closed++
	return f.err
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	h1 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf1})
	h2 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf2})

	multi := NewMultiHandler(h1, h2)
	defer multi.Close()

	if err := multi.WriteLine([]byte("[INF] (10:00:00.000) > multi test")); err != nil {
		t.Errorf("WriteLine() error = %v", err)
	}

	for i, buf := range []*bytes.Buffer{&buf1, &buf2} {
		if buf.String() != "[INF] (10:00:00.000) > multi test\n" {
			t.Errorf("handler %d got %q", i+1, buf.String())
		}
	}
}

func TestMultiHandler_CollectsErrors(t *testing.T) {
	var buf bytes.Buffer
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	a := &failingHandler{err: errA}
	b := &failingHandler{err: errB}

	multi := NewMultiHandler(a, consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf}), b)

	err := multi.WriteLine([]byte("line"))
	if len(multierr.Errors(err)) != 2 || !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("WriteLine() error = %v, want both failures", err)
	}
	if buf.String() != "line\n" {
		t.Errorf("healthy child got %q, want %q", buf.String(), "line\n")
	}

	if err := multi.Close(); len(multierr.Errors(err)) != 2 {
		t.Errorf("Close() error = %v, want two failures", err)
	}
	if a.closed != 1 || b.closed != 1 {
		t.Errorf("children closed %d and %d times, want once each", a.closed, b.closed)
	}
}

func TestMultiHandler_OpensLazyChildren(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee.log")
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{Filename: path})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	multi := NewMultiHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf}), fh)

	if err := multi.WriteLine([]byte("early")); !errors.Is(err, filehandler.ErrNotOpen) {
		t.Errorf("WriteLine() before Open error = %v, want ErrNotOpen", err)
	}
	if err := multi.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := multi.WriteLine([]byte("late")); err != nil {
		t.Errorf("WriteLine() error = %v", err)
	}
	if err := multi.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "late\n" {
		t.Errorf("tee file = %q, want %q", data, "late\n")
	}
	if buf.String() != "early\nlate\n" {
		t.Errorf("console = %q", buf.String())
	}
}
