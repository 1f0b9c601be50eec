// Package grader checks a submitted automaton against a reference solution
// by language equivalence and produces a distinguishing counterexample when
// the languages differ.
package grader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/automark/pkg/dfa"
)

// ErrChallengeNotFound is returned by challenge stores when an ID cannot be
// resolved.
var ErrChallengeNotFound = errors.New("challenge not found")

// Challenge is a stored grading exercise: a prompt for the learner plus the
// reference solution's automaton specification.
type Challenge struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	// Reference holds the YAML specification of the reference solution.
	Reference string `json:"reference" yaml:"reference" mapstructure:"reference"`
}

// EquivalenceResult reports a language comparison. Success true means no
// distinguishing string exists (the languages are equivalent) and Example is
// nil. Otherwise Example points at a witness accepted by exactly one of the
// two automatons; the empty string is a valid witness, hence the pointer.
type EquivalenceResult struct {
	Success bool    `json:"success"`
	Example *string `json:"example"`
}

// Compare checks two loaded automatons for language equivalence by building
// their symmetric difference and searching it for an accepting witness.
func Compare(reference, submission *dfa.DFA) (EquivalenceResult, error) {
	diff, err := reference.SymmetricDifference(submission)
	if err != nil {
		return EquivalenceResult{}, fmt.Errorf("compare: %w", err)
	}

	example, found, err := diff.FindExample(true)
	if err != nil {
		return EquivalenceResult{}, fmt.Errorf("compare: %w", err)
	}
	if found {
		return EquivalenceResult{Success: false, Example: &example}, nil
	}
	return EquivalenceResult{Success: true}, nil
}

// GradeResult is the consumer-facing outcome of grading one submission.
// When the submission fails to load, Errors carries the load diagnostics and
// Example is nil.
type GradeResult struct {
	Success bool     `json:"success"`
	Example *string  `json:"example,omitempty"`
	Errors  []string `json:"errors"`
}

// Grade loads the challenge's reference solution and the submitted
// specification, then compares their languages. Submission load failures are
// reported in the result; an invalid reference solution is an operator
// error and surfaces as a Go error instead.
func Grade(challenge *Challenge, submission string) (GradeResult, error) {
	reference := dfa.New()
	if res := reference.Load(challenge.Reference); !res.Success {
		return GradeResult{}, fmt.Errorf("reference solution for challenge %q is invalid: %s",
			challenge.ID, strings.Join(res.Errors, "; "))
	}

	submitted := dfa.New()
	if res := submitted.Load(submission); !res.Success {
		return GradeResult{Success: false, Errors: res.Errors}, nil
	}

	eq, err := Compare(reference, submitted)
	if err != nil {
		return GradeResult{}, err
	}
	return GradeResult{Success: eq.Success, Example: eq.Example, Errors: []string{}}, nil
}
