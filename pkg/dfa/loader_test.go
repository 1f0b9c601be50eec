package dfa_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aretw0/automark/pkg/dfa"
)

func TestLoad_Success(t *testing.T) {
	d := dfa.New()
	res := d.Load(endsInOne)

	if !res.Success {
		t.Fatalf("Load() failed: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Load() errors = %v, want none", res.Errors)
	}
	if !d.Loaded() {
		t.Error("Loaded() = false after successful load")
	}
	if d.StateCount() != 2 {
		t.Errorf("StateCount() = %d, want 2", d.StateCount())
	}
}

func TestLoad_ParseError(t *testing.T) {
	d := dfa.New()
	res := d.Load("alphabet: [")

	if res.Success {
		t.Fatal("expected parse failure")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "YAML parsing error: ") {
		t.Errorf("unexpected error message: %q", res.Errors[0])
	}
	if strings.Contains(res.Errors[0], "\n") {
		t.Errorf("parse error should be single-line: %q", res.Errors[0])
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	d := dfa.New()
	res := d.Load("")

	if res.Success {
		t.Fatal("expected shape failure")
	}
	want := []string{
		"Field 'alphabet': field required",
		"Field 'states': field required",
		"Field 'initial_state': field required",
		"Field 'accepting_states': field required",
		"Field 'transitions': field required",
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Load() errors = %v, want %v", res.Errors, want)
	}
}

func TestLoad_ShapeErrorsShortCircuitSemantics(t *testing.T) {
	// transitions has the wrong shape AND the document is semantically
	// broken (bad initial state). Only the shape error may be reported.
	spec := `
alphabet: ["0"]
states: [q0]
initial_state: nope
accepting_states: []
transitions: [q0]
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected shape failure")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one shape error, got %v", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "Field 'transitions':") {
		t.Errorf("unexpected error: %q", res.Errors[0])
	}
	for _, msg := range res.Errors {
		if strings.Contains(msg, "Initial state") {
			t.Errorf("semantic check ran despite shape failure: %q", msg)
		}
	}
}

func TestLoad_ShapeErrorNamesNestedPath(t *testing.T) {
	spec := `
alphabet: ["0"]
states: [q0]
initial_state: q0
accepting_states: []
transitions:
  q0: {"0": [q0]}
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected shape failure")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "Field 'transitions -> q0 -> 0':") {
		t.Errorf("error should name the nested field path, got %q", res.Errors[0])
	}
}

func TestLoad_NullValueFailsShapeTier(t *testing.T) {
	// A key with no value ("initial_state:") is a YAML null, not an empty
	// string. It must fail the shape tier, never reach the semantic tier as
	// the state name ''.
	spec := `
alphabet: ["0"]
states: [q0]
initial_state:
accepting_states: []
transitions:
  q0: {"0": q0}
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected shape failure")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if got, want := res.Errors[0], "Field 'initial_state': expected string, got null"; got != want {
		t.Errorf("Load() error = %q, want %q", got, want)
	}
	for _, msg := range res.Errors {
		if strings.Contains(msg, "Initial state") {
			t.Errorf("semantic check ran despite shape failure: %q", msg)
		}
	}
}

func TestLoad_NullTransitionDestinationFailsShapeTier(t *testing.T) {
	spec := `
alphabet: ["0"]
states: [q0]
initial_state: q0
accepting_states: []
transitions:
  q0: {"0": }
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected shape failure")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if got, want := res.Errors[0], "Field 'transitions -> q0 -> 0': expected string, got null"; got != want {
		t.Errorf("Load() error = %q, want %q", got, want)
	}
}

func TestLoad_SemanticErrorsAccumulate(t *testing.T) {
	spec := `
alphabet: ["ab", "1"]
states: [q0]
initial_state: qX
accepting_states: [qY]
transitions:
  q0: {"1": qZ}
  qW: {"1": q0}
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected semantic failure")
	}
	want := []string{
		"Symbol 'ab' is not a single character.",
		"Initial state 'qX' not in states.",
		"Accepting state 'qY' not in states.",
		"State 'qZ' in transition function not in states.",
		"State 'qW' in transition function not in states.",
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Load() errors = %v, want %v", res.Errors, want)
	}
}

func TestLoad_MissingTransition(t *testing.T) {
	// One transition hole: exactly one semantic error naming the state and
	// the symbol, and no shape errors.
	spec := `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0}
`
	d := dfa.New()
	res := d.Load(spec)

	if res.Success {
		t.Fatal("expected semantic failure")
	}
	want := []string{"State 'q1' missing transition for symbol '1'."}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Load() errors = %v, want %v", res.Errors, want)
	}
}

func TestLoad_TotalityCheckSkippedAfterReferenceErrors(t *testing.T) {
	// The q1 row references an unknown state AND leaves holes; only the
	// reference error may be reported.
	spec := `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": nowhere}
`
	d := dfa.New()
	res := d.Load(spec)

	want := []string{"State 'nowhere' in transition function not in states."}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Load() errors = %v, want %v", res.Errors, want)
	}
}

func TestLoad_Deterministic(t *testing.T) {
	spec := `
alphabet: ["0", "1"]
states: [a, b, c]
initial_state: a
accepting_states: [c]
transitions:
  a: {"0": a}
  b: {"1": b}
  c: {}
`
	first := dfa.New().Load(spec)
	for i := 0; i < 20; i++ {
		again := dfa.New().Load(spec)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different diagnostics:\nfirst: %v\nagain: %v", i, first.Errors, again.Errors)
		}
	}
}

func TestLoad_UnquotedScalarsAreSymbols(t *testing.T) {
	// Specs are read without implicit typing: a bare 0 is the symbol "0".
	spec := `
alphabet: [0, 1]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {0: q0, 1: q1}
  q1: {0: q0, 1: q1}
`
	d := dfa.New()
	res := d.Load(spec)
	if !res.Success {
		t.Fatalf("Load() failed: %v", res.Errors)
	}

	result, err := d.Accepts("01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Accepted {
		t.Error("expected \"01\" to be accepted")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.yaml")
	if err := os.WriteFile(path, []byte(endsInOne), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	d := dfa.New()
	if res := d.LoadFile(path); !res.Success {
		t.Fatalf("LoadFile() failed: %v", res.Errors)
	}

	missing := dfa.New()
	res := missing.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if res.Success {
		t.Fatal("expected failure for missing file")
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "Failed to read specification file:") {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}
