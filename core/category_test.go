package core

import (
	"errors"
	"sync"
	"testing"
)

func TestCategory_Builtins(t *testing.T) {
	tests := []struct {
		cat    Category
		name   string
		code   string
		family string
	}{
		{Trace, "TRACE", "TRC", FamilyLog},
		{Debug, "DEBUG", "DBG", FamilyLog},
		{Info, "INFO", "INF", FamilyLog},
		{Warn, "WARN", "WAR", FamilyLog},
		{Error, "ERROR", "ERR", FamilyLog},
		{Exception, "EXCEPTION", "EXP", FamilyLog},
		{Results, "RESULTS", "RES", FamilyResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.name {
				t.Errorf("String() = %v, want %v", got, tt.name)
			}
			if got := tt.cat.Code(); got != tt.code {
				t.Errorf("Code() = %v, want %v", got, tt.code)
			}
			if got := tt.cat.Family(); got != tt.family {
				t.Errorf("Family() = %v, want %v", got, tt.family)
			}
			if !tt.cat.Builtin() {
				t.Errorf("Builtin() = false for %v", tt.name)
			}
		})
	}
}

func TestCategory_Unknown(t *testing.T) {
	c := Category(60000)
	if c.String() != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN, got %q", c.String())
	}
	if c.Code() != "UNK" {
		t.Errorf("Expected UNK, got %q", c.Code())
	}
	if c.Family() != FamilyLog {
		t.Errorf("Expected fallback family %q, got %q", FamilyLog, c.Family())
	}
}

func TestRegisterCategory(t *testing.T) {
	swarm, err := RegisterCategory("swarm", "swm", "swarmRes")
	if err != nil {
		t.Fatalf("RegisterCategory() error = %v", err)
	}
	if swarm.Builtin() {
		t.Error("custom category reported as builtin")
	}
	if swarm.Code() != "SWM" || swarm.String() != "SWARM" || swarm.Family() != "swarmRes" {
		t.Errorf("unexpected registration: %s %s %s", swarm, swarm.Code(), swarm.Family())
	}

	again, err := RegisterCategory("SWARM", "SWM", "swarmRes")
	if err != nil || again != swarm {
		t.Errorf("re-registration = %v, %v; want %v, nil", again, err, swarm)
	}

	if _, err := RegisterCategory("SWARM", "XYZ", "swarmRes"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("conflicting registration error = %v, want ErrInvalidCategory", err)
	}

	found := false
	for _, f := range Families() {
		if f == "swarmRes" {
			found = true
		}
	}
	if !found {
		t.Error("Families() does not list the custom family")
	}
}

func TestRegisterCategory_Invalid(t *testing.T) {
	tests := []struct {
		name, code, family string
	}{
		{"", "ABC", "fam"},
		{"X", "AB", "fam"},
		{"X", "ABCD", "fam"},
		{"X", "ABC", ""},
	}
	for _, tt := range tests {
		if _, err := RegisterCategory(tt.name, tt.code, tt.family); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("RegisterCategory(%q, %q, %q) error = %v, want ErrInvalidCategory",
				tt.name, tt.code, tt.family, err)
		}
	}
}

func TestRegisterCategory_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]Category, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := RegisterCategory("dolius", "DOL", "dolius")
			if err != nil {
				t.Errorf("RegisterCategory() error = %v", err)
			}
			results[i] = c
		}(i)
	}
	wg.Wait()
	for _, c := range results[1:] {
		if c != results[0] {
			t.Fatalf("concurrent registration produced %v and %v", results[0], c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"info", Info, true},
		{"INF", Info, true},
		{"warning", Warn, true},
		{" results ", Results, true},
		{"exp", Exception, true},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) < int(numBuiltin) {
		t.Fatalf("Categories() returned %d entries, want at least %d", len(cats), numBuiltin)
	}
	for i, c := range cats[:numBuiltin] {
		if c != Category(i) || !c.Builtin() {
			t.Errorf("Categories()[%d] = %v, want builtin %d", i, c, i)
		}
	}
}
