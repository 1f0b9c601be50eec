package schema

import (
	"testing"
)

func specFields() []Field {
	return []Field{
		{Key: "alphabet", Type: Slice(String())},
		{Key: "initial_state", Type: String()},
		{Key: "transitions", Type: Map(Map(String()))},
	}
}

func specDoc() Value {
	row := MappingValue()
	row.Set("0", ScalarValue("q0"))
	row.Set("1", ScalarValue("q1"))

	transitions := MappingValue()
	transitions.Set("q0", row)

	doc := MappingValue()
	doc.Set("alphabet", SequenceValue(ScalarValue("0"), ScalarValue("1")))
	doc.Set("initial_state", ScalarValue("q0"))
	doc.Set("transitions", transitions)
	return doc
}

func TestValidate_Success(t *testing.T) {
	err := Validate(specFields(), specDoc())
	if err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingField(t *testing.T) {
	doc := specDoc()
	delete(doc.Map, "initial_state")
	for i, key := range doc.Keys {
		if key == "initial_state" {
			doc.Keys = append(doc.Keys[:i], doc.Keys[i+1:]...)
			break
		}
	}

	err := Validate(specFields(), doc)
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(aggr.Errors))
	}
	if got := aggr.Errors[0].Error(); got != "Field 'initial_state': field required" {
		t.Errorf("error = %q, want missing-field message", got)
	}
}

func TestValidate_KindMismatch(t *testing.T) {
	doc := specDoc()
	doc.Set("alphabet", ScalarValue("01"))

	err := Validate(specFields(), doc)
	if err == nil {
		t.Fatal("Validate() should return error for kind mismatch")
	}

	msgs := Messages(err)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 error, got %v", msgs)
	}
	want := "Field 'alphabet': expected a sequence of string, got scalar"
	if msgs[0] != want {
		t.Errorf("error = %q, want %q", msgs[0], want)
	}
}

func TestValidate_NestedPath(t *testing.T) {
	doc := specDoc()
	transitions := doc.Map["transitions"]
	row := transitions.Map["q0"]
	row.Set("1", SequenceValue(ScalarValue("q1")))
	transitions.Set("q0", row)
	doc.Set("transitions", transitions)

	err := Validate(specFields(), doc)
	msgs := Messages(err)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 error, got %v", msgs)
	}
	want := "Field 'transitions -> q0 -> 1': expected string, got sequence"
	if msgs[0] != want {
		t.Errorf("error = %q, want %q", msgs[0], want)
	}
}

func TestValidate_NonMappingRoot(t *testing.T) {
	err := Validate(specFields(), SequenceValue())
	msgs := Messages(err)
	if len(msgs) != 3 {
		t.Fatalf("expected one required-field error per field, got %v", msgs)
	}
	for i, key := range []string{"alphabet", "initial_state", "transitions"} {
		want := "Field '" + key + "': field required"
		if msgs[i] != want {
			t.Errorf("error %d = %q, want %q", i, msgs[i], want)
		}
	}
}

func TestValidate_ErrorOrderFollowsDocument(t *testing.T) {
	// Two sibling violations must come out in declaration order with
	// independent paths.
	transitions := MappingValue()
	transitions.Set("q1", ScalarValue("oops"))
	transitions.Set("q0", ScalarValue("oops"))

	doc := specDoc()
	doc.Set("transitions", transitions)

	msgs := Messages(Validate(specFields(), doc))
	if len(msgs) != 2 {
		t.Fatalf("expected 2 errors, got %v", msgs)
	}
	if msgs[0] != "Field 'transitions -> q1': expected a mapping of string, got scalar" {
		t.Errorf("first error = %q", msgs[0])
	}
	if msgs[1] != "Field 'transitions -> q0': expected a mapping of string, got scalar" {
		t.Errorf("second error = %q", msgs[1])
	}
}

func TestValidate_NullIsNotAString(t *testing.T) {
	doc := specDoc()
	doc.Set("initial_state", NullValue())

	msgs := Messages(Validate(specFields(), doc))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 error, got %v", msgs)
	}
	if msgs[0] != "Field 'initial_state': expected string, got null" {
		t.Errorf("error = %q", msgs[0])
	}
}

func TestValidate_NullIsNotASequence(t *testing.T) {
	doc := specDoc()
	doc.Set("alphabet", NullValue())

	msgs := Messages(Validate(specFields(), doc))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 error, got %v", msgs)
	}
	if msgs[0] != "Field 'alphabet': expected a sequence of string, got null" {
		t.Errorf("error = %q", msgs[0])
	}
}

func TestInterface_PlainValues(t *testing.T) {
	plain := specDoc().Interface()
	m, ok := plain.(map[string]any)
	if !ok {
		t.Fatalf("Interface() = %T, want map[string]any", plain)
	}
	if m["initial_state"] != "q0" {
		t.Errorf("initial_state = %v, want q0", m["initial_state"])
	}
	alphabet, ok := m["alphabet"].([]any)
	if !ok || len(alphabet) != 2 || alphabet[0] != "0" {
		t.Errorf("alphabet = %v, want [0 1]", m["alphabet"])
	}
}
