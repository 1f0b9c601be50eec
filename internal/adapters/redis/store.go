package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/automark/pkg/grader"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.ChallengeStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for challenges.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for challenges.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "automark:challenge:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the challenge to Redis and registers it in the index set.
func (s *Store) Save(ctx context.Context, challenge *grader.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return fmt.Errorf("challenge ID cannot be empty")
	}

	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(challenge.ID), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), challenge.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save challenge to redis: %w", err)
	}
	return nil
}

// Load retrieves a challenge from Redis.
func (s *Store) Load(ctx context.Context, id string) (*grader.Challenge, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, grader.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge from redis: %w", err)
	}

	var challenge grader.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// List returns the IDs registered in the index set.
func (s *Store) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges from redis: %w", err)
	}
	return ids, nil
}

// Delete removes the challenge and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(id))
	pipe.SRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete challenge from redis: %w", err)
	}
	return nil
}
