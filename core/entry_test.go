package core

import (
	"strings"
	"testing"
)

func TestEntry_Render(t *testing.T) {
	e := &Entry{Message: "  hun(arg=%d): %d", Args: []interface{}{3, 16}}
	if got := e.Render(); got != "  hun(arg=3): 16" {
		t.Errorf("Render() = %q", got)
	}

	// without args a literal percent sign survives
	e = &Entry{Message: "100% done"}
	if got := e.Render(); got != "100% done" {
		t.Errorf("Render() = %q", got)
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	if len(e1.Fields) != 0 {
		t.Errorf("Expected empty fields, got %d", len(e1.Fields))
	}

	e1.Message = "test"
	e1.Logger = "ilog.test"
	e1.Indent = "  "
	e1.Args = []interface{}{1}
	e1.Fields = append(e1.Fields, Field{Key: "test", Str: "value"})

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	if e2.Message != "" || e2.Logger != "" || e2.Indent != "" || e2.Args != nil {
		t.Errorf("Expected clean entry after pool reset, got %+v", e2)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("Expected empty fields after pool reset, got %d", len(e2.Fields))
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.ShortFile != "entry_test.go" {
		t.Errorf("Expected entry_test.go, got %q", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if !strings.HasSuffix(caller.Function, "TestGetCaller") {
		t.Errorf("Expected TestGetCaller, got %q", caller.Function)
	}
}

func TestCallStack(t *testing.T) {
	stack := CallStack(0)
	first := strings.SplitN(stack, "\n", 2)[0]
	if !strings.HasSuffix(first, "TestCallStack") {
		t.Errorf("Expected innermost frame to be TestCallStack, got %q", first)
	}
	if !strings.Contains(stack, "entry_test.go:") {
		t.Errorf("Expected file and line in stack, got:\n%s", stack)
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
