package automark

import (
	"context"
	"log/slog"
	"net/http"

	httpAdapter "github.com/aretw0/automark/internal/adapters/http"
	"github.com/aretw0/automark/internal/adapters/memory"
	"github.com/aretw0/automark/pkg/dfa"
	"github.com/aretw0/automark/pkg/grader"
	"github.com/aretw0/automark/pkg/ports"
)

// Version is the library version, reported by the CLI.
var Version = "0.3.0"

// Engine is the high-level entry point for the automark library. It wraps
// the DFA core and a challenge store behind a simplified API for hosts
// (CLI, HTTP server, embedding applications).
type Engine struct {
	store     ports.ChallengeStore
	logger    *slog.Logger
	staticDir string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom challenge store, replacing the default
// in-memory one.
func WithStore(store ports.ChallengeStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStaticDir sets a directory of static files the HTTP handler serves at
// the root path (typically the grading UI).
func WithStaticDir(dir string) Option {
	return func(e *Engine) {
		e.staticDir = dir
	}
}

// New initializes an Engine. Without options it grades against an in-memory
// challenge store and logs through slog.Default().
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.store == nil {
		eng.store = memory.New()
	}
	if eng.logger == nil {
		eng.logger = slog.Default()
	}
	return eng
}

// Check loads the given specification and evaluates the test string against
// it. A load failure is relayed inside the result envelope, mirroring the
// wire contract of the /check endpoint.
func (e *Engine) Check(spec, input string) dfa.AcceptResult {
	automaton := dfa.New()
	if res := automaton.Load(spec); !res.Success {
		return dfa.AcceptResult{Success: false, Errors: res.Errors}
	}

	result, err := automaton.Accepts(input)
	if err != nil {
		// Unreachable with a fresh automaton; kept for the facade contract.
		return dfa.AcceptResult{Success: false, Errors: []string{err.Error()}}
	}
	return result
}

// AddChallenge stores a challenge manifest.
func (e *Engine) AddChallenge(ctx context.Context, challenge *grader.Challenge) error {
	return e.store.Save(ctx, challenge)
}

// Challenges lists the stored challenge IDs.
func (e *Engine) Challenges(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Grade compares a submitted specification against a stored challenge's
// reference solution.
func (e *Engine) Grade(ctx context.Context, challengeID, submission string) (grader.GradeResult, error) {
	challenge, err := e.store.Load(ctx, challengeID)
	if err != nil {
		return grader.GradeResult{}, err
	}
	return grader.Grade(challenge, submission)
}

// Handler returns the engine's HTTP API handler.
func (e *Engine) Handler() http.Handler {
	opts := []httpAdapter.Option{httpAdapter.WithLogger(e.logger)}
	if e.staticDir != "" {
		opts = append(opts, httpAdapter.WithStaticDir(e.staticDir))
	}
	return httpAdapter.NewHandler(e.store, opts...)
}
