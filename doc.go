/*
Package automark is a deterministic finite automaton (DFA) engine built for
grading: it parses textual automaton specifications, validates them in two
strict tiers, evaluates strings, combines automatons with boolean set
operations, searches for distinguishing example strings, and computes
minimal-DFA state counts.

Its primary use is checking a learner's submitted automaton against a
reference solution: the two languages are compared through a symmetric
difference construction, and any string accepted by exactly one automaton is
returned as a concrete counterexample.

# Concept

A specification declares an alphabet of single-character symbols, a set of
named states, an initial state, the accepting states, and a total transition
function. Loading validates shape first (field presence and nesting,
reported per field path) and semantics second (referential integrity and
totality, accumulated exhaustively); the two tiers never mix. A successfully
loaded automaton is immutable, so it is safe to share across readers.

The algebra favors algebraic clarity over automaton size: intersection and
symmetric difference are derived from complement and the union product by
De Morgan's law, and results are never minimized implicitly. Callers who
need the canonical size ask the minimizer, which computes the Myhill-Nerode
class count by partition refinement without rebuilding the automaton.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/automark"
	)

	func main() {
		eng := automark.New()

		spec := `
	alphabet: ["0", "1"]
	states: [q0, q1]
	initial_state: q0
	accepting_states: [q1]
	transitions:
	  q0: {"0": q0, "1": q1}
	  q1: {"0": q0, "1": q1}
	`

		result := eng.Check(spec, "101")
		fmt.Println(result.Accepted) // true: the string ends in 1
	}

For grading, store challenges (manifest plus reference solution) in a
ChallengeStore adapter (in-memory, filesystem, or Redis) and call Grade, or
mount Handler as an HTTP API.
*/
package automark
