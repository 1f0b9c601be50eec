package automark_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/automark"
	"github.com/aretw0/automark/pkg/grader"
)

// ExampleEngine_Check demonstrates evaluating a test string against an
// automaton specification written in YAML.
func ExampleEngine_Check() {
	engine := automark.New()

	spec := `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0, "1": q1}
`

	result := engine.Check(spec, "101")
	fmt.Println(result.Accepted)
	// Output: true
}

// ExampleEngine_Grade demonstrates grading a submission against a stored
// challenge. The submission recognizes a different language, so grading
// reports a distinguishing example.
func ExampleEngine_Grade() {
	engine := automark.New()
	ctx := context.Background()

	reference := `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: [q1]
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0, "1": q1}
`
	submission := `
alphabet: ["0", "1"]
states: [q0, q1]
initial_state: q0
accepting_states: []
transitions:
  q0: {"0": q0, "1": q1}
  q1: {"0": q0, "1": q1}
`

	err := engine.AddChallenge(ctx, &grader.Challenge{
		ID:        "ending-1",
		Title:     "Strings ending in 1",
		Reference: reference,
	})
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Grade(ctx, "ending-1", submission)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Success)
	fmt.Println(*result.Example)
	// Output:
	// false
	// 1
}
