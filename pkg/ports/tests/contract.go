// Package tests provides reusable contract suites for port implementations.
package tests

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/aretw0/automark/pkg/grader"
	"github.com/aretw0/automark/pkg/ports"
)

// ChallengeStoreContract verifies that an adapter complies with
// ports.ChallengeStore. The store must be empty when the suite starts.
func ChallengeStoreContract(t *testing.T, store ports.ChallengeStore) {
	t.Helper()
	ctx := context.Background()

	ending1 := &grader.Challenge{
		ID:        "ending-1",
		Title:     "Strings ending in 1",
		Reference: "alphabet: [\"0\", \"1\"]\nstates: [q0, q1]\ninitial_state: q0\naccepting_states: [q1]\ntransitions:\n  q0: {\"0\": q0, \"1\": q1}\n  q1: {\"0\": q0, \"1\": q1}\n",
	}

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		if !errors.Is(err, grader.ErrChallengeNotFound) {
			t.Errorf("expected ErrChallengeNotFound, got %v", err)
		}
	})

	t.Run("Save_Load", func(t *testing.T) {
		if err := store.Save(ctx, ending1); err != nil {
			t.Fatalf("unexpected error saving challenge: %v", err)
		}
		got, err := store.Load(ctx, ending1.ID)
		if err != nil {
			t.Fatalf("unexpected error loading challenge: %v", err)
		}
		if got.Title != ending1.Title || got.Reference != ending1.Reference {
			t.Errorf("loaded challenge differs from saved: %+v", got)
		}
	})

	t.Run("Save_Overwrite", func(t *testing.T) {
		updated := *ending1
		updated.Title = "Strings ending in 1 (v2)"
		if err := store.Save(ctx, &updated); err != nil {
			t.Fatalf("unexpected error overwriting challenge: %v", err)
		}
		got, err := store.Load(ctx, ending1.ID)
		if err != nil {
			t.Fatalf("unexpected error reloading challenge: %v", err)
		}
		if got.Title != updated.Title {
			t.Errorf("overwrite not visible: got title %q", got.Title)
		}
	})

	t.Run("List", func(t *testing.T) {
		other := &grader.Challenge{ID: "contains-11", Title: "Contains 11", Reference: ending1.Reference}
		if err := store.Save(ctx, other); err != nil {
			t.Fatalf("unexpected error saving second challenge: %v", err)
		}
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing challenges: %v", err)
		}
		sort.Strings(ids)
		want := []string{"contains-11", "ending-1"}
		if len(ids) != len(want) {
			t.Fatalf("expected %d challenges, got %v", len(want), ids)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("List() = %v, want %v", ids, want)
				break
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, ending1.ID); err != nil {
			t.Fatalf("unexpected error deleting challenge: %v", err)
		}
		if _, err := store.Load(ctx, ending1.ID); !errors.Is(err, grader.ErrChallengeNotFound) {
			t.Errorf("expected ErrChallengeNotFound after delete, got %v", err)
		}
		// Deleting twice is a no-op.
		if err := store.Delete(ctx, ending1.ID); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}
