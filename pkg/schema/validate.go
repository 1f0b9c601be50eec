package schema

// Field pairs a top-level document key with its expected shape. Fields are a
// slice, not a map, so validation walks them in declaration order and repeated
// runs over the same document produce the same error list.
type Field struct {
	Key  string
	Type Type
}

// Validate checks the document root against the declared fields. Every field
// is required. Returns nil when the document conforms, otherwise an
// *AggregateError carrying one *ValidationError per violated field path.
func Validate(fields []Field, doc Value) error {
	var errs []error

	if doc.Kind != KindMapping {
		for _, field := range fields {
			errs = append(errs, &ValidationError{
				Path:   []string{field.Key},
				Reason: "field required",
			})
		}
		return &AggregateError{Errors: errs}
	}

	for _, field := range fields {
		value, exists := doc.Get(field.Key)
		if !exists {
			errs = append(errs, &ValidationError{
				Path:   []string{field.Key},
				Reason: "field required",
			})
			continue
		}

		errs = append(errs, field.Type.Check([]string{field.Key}, value)...)
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}
