package schema

import "fmt"

// Type defines the contract for shape validation of one document position.
// Implementations report every violation found beneath that position.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string").
	Name() string
	// Check validates a value at the given path and returns all violations.
	Check(path []string, value Value) []error
}

// --- Built-in Type Implementations ---

// StringType validates scalar values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Check(path []string, value Value) []error {
	if value.Kind != KindScalar {
		return []error{&ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("expected string, got %s", value.Kind),
		}}
	}
	return nil
}

// SliceType validates sequences of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Check(path []string, value Value) []error {
	if value.Kind != KindSequence {
		return []error{&ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("expected a sequence of %s, got %s", t.elemType.Name(), value.Kind),
		}}
	}

	var errs []error
	for i, elem := range value.Seq {
		errs = append(errs, t.elemType.Check(childPath(path, fmt.Sprint(i)), elem)...)
	}
	return errs
}

// MapType validates mappings whose values share a specific type. Keys are
// validated in document order so error lists are reproducible.
type MapType struct {
	elemType Type
}

func (t *MapType) Name() string {
	return fmt.Sprintf("{%s}", t.elemType.Name())
}

func (t *MapType) Check(path []string, value Value) []error {
	if value.Kind != KindMapping {
		return []error{&ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("expected a mapping of %s, got %s", t.elemType.Name(), value.Kind),
		}}
	}

	var errs []error
	for _, key := range value.Keys {
		errs = append(errs, t.elemType.Check(childPath(path, key), value.Map[key])...)
	}
	return errs
}

// childPath copies the parent path before extending it. Sibling errors hold
// on to their path slices, so sharing a backing array would corrupt them.
func childPath(path []string, elem string) []string {
	child := make([]string, len(path), len(path)+1)
	copy(child, path)
	return append(child, elem)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Slice creates a sequence type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Map creates a mapping type validator for values of the given type.
func Map(elemType Type) Type {
	return &MapType{elemType: elemType}
}
