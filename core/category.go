package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidCategory is returned when a category cannot be registered.
var ErrInvalidCategory = errors.New("invalid category")

// Category classifies a log entry. It selects both the three letter
// label printed in front of the line and the destination family the
// line is written to.
type Category uint16

const (
	// Trace for very fine grained execution tracing
	Trace Category = iota
	// Debug for detailed debugging information
	Debug
	// Info for general informational messages
	Info
	// Warn for warning messages
	Warn
	// Error for error messages
	Error
	// Exception for error values rendered with their stack text
	Exception
	// Results for experiment or run results, kept in their own file
	Results

	numBuiltin
)

const (
	// FamilyLog is the destination family shared by the severity categories
	FamilyLog = "tslog"
	// FamilyResults is the destination family used by Results
	FamilyResults = "results"
)

type categoryInfo struct {
	name   string
	code   string
	family string
}

var (
	registryMu sync.RWMutex
	registry   = []categoryInfo{
		Trace:     {name: "TRACE", code: "TRC", family: FamilyLog},
		Debug:     {name: "DEBUG", code: "DBG", family: FamilyLog},
		Info:      {name: "INFO", code: "INF", family: FamilyLog},
		Warn:      {name: "WARN", code: "WAR", family: FamilyLog},
		Error:     {name: "ERROR", code: "ERR", family: FamilyLog},
		Exception: {name: "EXCEPTION", code: "EXP", family: FamilyLog},
		Results:   {name: "RESULTS", code: "RES", family: FamilyResults},
	}
)

// RegisterCategory adds a custom category routed to its own family.
// Registering a name that already exists returns the existing category
// as long as code and family match.
func RegisterCategory(name, code, family string) (Category, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	code = strings.ToUpper(strings.TrimSpace(code))
	family = strings.TrimSpace(family)
	if name == "" || family == "" {
		return 0, fmt.Errorf("%w: name and family are required", ErrInvalidCategory)
	}
	if len(code) != 3 {
		return 0, fmt.Errorf("%w: code %q must be three characters", ErrInvalidCategory, code)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	for i, info := range registry {
		if info.name != name {
			continue
		}
		if info.code != code || info.family != family {
			return 0, fmt.Errorf("%w: %s already registered as [%s] -> %s",
				ErrInvalidCategory, name, info.code, info.family)
		}
		return Category(i), nil
	}

	registry = append(registry, categoryInfo{name: name, code: code, family: family})
	return Category(len(registry) - 1), nil
}

// Categories returns every known category, built-ins first.
func Categories() []Category {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Category, len(registry))
	for i := range registry {
		out[i] = Category(i)
	}
	return out
}

// Families returns the distinct destination families in registration order.
func Families() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	seen := make(map[string]struct{}, len(registry))
	var out []string
	for _, info := range registry {
		if _, ok := seen[info.family]; ok {
			continue
		}
		seen[info.family] = struct{}{}
		out = append(out, info.family)
	}
	return out
}

// ParseCategory looks a category up by name or by its three letter code
func ParseCategory(s string) (Category, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "WARNING" {
		return Warn, true
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	for i, info := range registry {
		if info.name == s || info.code == s {
			return Category(i), true
		}
	}
	return 0, false
}

func (c Category) info() (categoryInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if int(c) >= len(registry) {
		return categoryInfo{}, false
	}
	return registry[c], true
}

// String returns the category name
func (c Category) String() string {
	if info, ok := c.info(); ok {
		return info.name
	}
	return "UNKNOWN"
}

// Code returns the three letter label code, e.g. "INF"
func (c Category) Code() string {
	if info, ok := c.info(); ok {
		return info.code
	}
	return "UNK"
}

// Family returns the destination family the category is written to.
// Unknown categories fall back to the shared log family.
func (c Category) Family() string {
	if info, ok := c.info(); ok {
		return info.family
	}
	return FamilyLog
}

// Builtin reports whether c is one of the predefined categories
func (c Category) Builtin() bool {
	return c < numBuiltin
}
