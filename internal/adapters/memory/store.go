package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/automark/pkg/grader"
)

// Store is an in-memory implementation of ports.ChallengeStore, used for
// tests and for embedding the grader without any persistence.
type Store struct {
	mu         sync.RWMutex
	challenges map[string]grader.Challenge
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{challenges: make(map[string]grader.Challenge)}
}

// Save stores a copy of the challenge.
func (s *Store) Save(ctx context.Context, challenge *grader.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return fmt.Errorf("challenge ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.ID] = *challenge
	return nil
}

// Load retrieves a challenge by ID.
func (s *Store) Load(ctx context.Context, id string) (*grader.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, ok := s.challenges[id]
	if !ok {
		return nil, grader.ErrChallengeNotFound
	}
	return &challenge, nil
}

// List returns the IDs of all stored challenges.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.challenges))
	for id := range s.challenges {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes a challenge; absent IDs are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, id)
	return nil
}
