package automark_test

import (
	"context"
	"testing"

	"github.com/aretw0/automark"
	"github.com/aretw0/automark/internal/adapters/file"
	"github.com/aretw0/automark/internal/logging"
	"github.com/aretw0/automark/pkg/grader"
)

const endsInOne = `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0, "1": q1}
`

const neverAccepts = `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: []
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0, "1": q1}
`

func TestFacade_Check(t *testing.T) {
	engine := automark.New(automark.WithLogger(logging.NewNop()))

	result := engine.Check(endsInOne, "101")
	if !result.Success {
		t.Fatalf("Check failed: %v", result.Errors)
	}
	if !result.Accepted {
		t.Error("Expected '101' to be accepted")
	}

	result = engine.Check(endsInOne, "10")
	if result.Accepted {
		t.Error("Expected '10' to be rejected")
	}
}

func TestFacade_CheckRelaysLoadFailure(t *testing.T) {
	engine := automark.New()

	result := engine.Check("initial_state: q0", "1")
	if result.Success {
		t.Fatal("Expected a failed result for an incomplete specification")
	}
	if len(result.Errors) == 0 {
		t.Error("Expected diagnostics in the result envelope")
	}
}

func TestFacade_GradeRoundtrip(t *testing.T) {
	engine := automark.New(automark.WithLogger(logging.NewNop()))
	ctx := context.Background()

	err := engine.AddChallenge(ctx, &grader.Challenge{
		ID:        "ending-1",
		Title:     "Strings ending in 1",
		Reference: endsInOne,
	})
	if err != nil {
		t.Fatalf("AddChallenge failed: %v", err)
	}

	ids, err := engine.Challenges(ctx)
	if err != nil {
		t.Fatalf("Challenges failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "ending-1" {
		t.Errorf("Expected [ending-1], got %v", ids)
	}

	result, err := engine.Grade(ctx, "ending-1", endsInOne)
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if !result.Success {
		t.Errorf("Expected an equivalent submission to pass, got example %v", result.Example)
	}

	result, err = engine.Grade(ctx, "ending-1", neverAccepts)
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Success {
		t.Error("Expected a differing submission to fail")
	}
	if result.Example == nil || *result.Example == "" {
		t.Error("Expected a non-empty distinguishing example")
	}
}

func TestFacade_GradeUnknownChallenge(t *testing.T) {
	engine := automark.New()

	_, err := engine.Grade(context.Background(), "missing", endsInOne)
	if err == nil {
		t.Fatal("Expected an error for an unknown challenge")
	}
}

func TestFacade_WithFileStore(t *testing.T) {
	store := file.New(t.TempDir())
	engine := automark.New(automark.WithStore(store), automark.WithLogger(logging.NewNop()))
	ctx := context.Background()

	if err := engine.AddChallenge(ctx, &grader.Challenge{ID: "c1", Reference: endsInOne}); err != nil {
		t.Fatalf("AddChallenge failed: %v", err)
	}
	result, err := engine.Grade(ctx, "c1", endsInOne)
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if !result.Success {
		t.Errorf("Expected success, got errors %v", result.Errors)
	}
}
