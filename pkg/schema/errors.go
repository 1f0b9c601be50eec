package schema

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Path   []string // Field path from the document root
	Reason string   // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", strings.Join(e.Path, " -> "), e.Reason)
}

// AggregateError represents multiple validation failures in document order.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}

// Messages flattens an AggregateError into its rendered error strings.
// A nil error yields nil.
func Messages(err error) []string {
	errs := ValidationErrors(err)
	if errs == nil {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}
