package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Entry is the unit of work handed from a producer to the sink worker.
// It is immutable once created; ownership moves from the producer to
// the queue and then to the worker, which renders and releases it.
type Entry struct {
	category Category
	payload  string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Package   string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// NewEntry builds an entry for cat. msg is rendered to text here, on the
// producer's goroutine, so the worker never touches caller-owned values.
func NewEntry(cat Category, msg interface{}) *Entry {
	e := entryPool.Get().(*Entry)
	e.category = cat
	switch v := msg.(type) {
	case string:
		e.payload = v
	case error:
		e.payload = v.Error()
	case fmt.Stringer:
		e.payload = v.String()
	default:
		e.payload = fmt.Sprint(v)
	}
	return e
}

// Category returns the entry's category
func (e *Entry) Category() Category { return e.category }

// Payload returns the rendered message text
func (e *Entry) Payload() string { return e.payload }

// PutEntry returns an Entry to the pool. Only the final owner of the
// entry (the sink worker) may call it.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.payload = ""
	e.category = 0
	entryPool.Put(e)
}

// GetCaller retrieves caller information. skip 0 describes the function
// that called GetCaller.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	pkg, short := splitFuncName(funcName)
	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  short,
		Package:   pkg,
		Defined:   true,
	}
}

// splitFuncName splits "github.com/a/b/pkg.(*T).Method" into
// "github.com/a/b/pkg" and "(*T).Method".
func splitFuncName(name string) (pkg, fn string) {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}
