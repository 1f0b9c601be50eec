package dfa

import "errors"

// ErrNotLoaded is returned when an operation requires a successfully loaded
// automaton. It signals caller misuse, not bad input data: input problems are
// reported through Result/AcceptResult error lists instead.
var ErrNotLoaded = errors.New("automaton not loaded")

// ErrAlphabetMismatch is returned when two automatons with different
// alphabets are combined.
var ErrAlphabetMismatch = errors.New("alphabets of both automatons must be the same")
