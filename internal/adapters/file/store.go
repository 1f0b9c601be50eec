package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/automark/pkg/grader"
)

// Store implements ports.ChallengeStore on the local filesystem.
// Each challenge lives in its own JSON file under BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".automark/challenges".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".automark", "challenges")
	}
	return &Store{BasePath: basePath}
}

// Save persists the challenge to a JSON file atomically: write to a
// temporary file in the same directory, fsync, then rename over the
// destination.
func (s *Store) Save(ctx context.Context, challenge *grader.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return fmt.Errorf("challenge ID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure challenge directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, challenge.ID+".json")

	data, err := json.MarshalIndent(challenge, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+challenge.ID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename cannot replace an existing file on Windows, so clear the
	// destination first. The delete+rename window is acceptable for CLI and
	// single-writer server usage; a partial file never is.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing challenge file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to challenge file: %w", err)
	}

	return nil
}

// Load retrieves a challenge from its JSON file.
func (s *Store) Load(ctx context.Context, id string) (*grader.Challenge, error) {
	if id == "" {
		return nil, fmt.Errorf("challenge ID cannot be empty")
	}

	data, err := os.ReadFile(filepath.Join(s.BasePath, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, grader.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to read challenge file: %w", err)
	}

	var challenge grader.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// List returns the IDs of all stored challenges.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read challenge directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Delete removes the challenge file.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("challenge ID cannot be empty")
	}

	err := os.Remove(filepath.Join(s.BasePath, id+".json"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete challenge file: %w", err)
	}
	return nil
}
