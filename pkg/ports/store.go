// Package ports declares the driven-port interfaces that adapters implement.
// The core never depends on a concrete storage or transport; hosts pick the
// adapter that fits their deployment.
package ports

import (
	"context"

	"github.com/aretw0/automark/pkg/grader"
)

// ChallengeStore defines the interface for persisting challenge manifests
// and their reference solutions.
type ChallengeStore interface {
	// Save persists a challenge, overwriting any previous version.
	Save(ctx context.Context, challenge *grader.Challenge) error

	// Load retrieves a challenge by ID.
	// Returns grader.ErrChallengeNotFound if the challenge does not exist.
	Load(ctx context.Context, id string) (*grader.Challenge, error)

	// List returns the IDs of all stored challenges.
	List(ctx context.Context) ([]string, error)

	// Delete removes a challenge. Deleting an absent challenge is not an
	// error.
	Delete(ctx context.Context, id string) error
}
