package schema

// Kind discriminates the three document shapes we validate against.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is an ordered document tree. Scalars are always strings (the loader
// reads specs without implicit typing, so "1" and 1 are the same entry), and
// mappings remember key declaration order so diagnostics come out in the
// order the author wrote the document.
type Value struct {
	Kind   Kind
	Scalar string
	Seq    []Value
	Keys   []string
	Map    map[string]Value
}

// ScalarValue builds a scalar Value.
func ScalarValue(s string) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

// SequenceValue builds a sequence Value.
func SequenceValue(items ...Value) Value {
	return Value{Kind: KindSequence, Seq: items}
}

// MappingValue builds an empty mapping Value.
func MappingValue() Value {
	return Value{Kind: KindMapping, Map: make(map[string]Value)}
}

// NullValue builds an explicit null. Null is its own kind, not an empty
// scalar, so shape validation rejects it wherever a string is expected.
func NullValue() Value {
	return Value{Kind: KindNull}
}

// Set inserts or replaces a mapping entry, preserving insertion order.
func (v *Value) Set(key string, val Value) {
	if _, exists := v.Map[key]; !exists {
		v.Keys = append(v.Keys, key)
	}
	v.Map[key] = val
}

// Get looks up a mapping entry.
func (v Value) Get(key string) (Value, bool) {
	val, ok := v.Map[key]
	return val, ok
}

// Interface converts the tree to plain Go values (map[string]any, []any,
// string) for decoders that do not care about ordering.
func (v Value) Interface() any {
	switch v.Kind {
	case KindSequence:
		out := make([]any, len(v.Seq))
		for i, item := range v.Seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.Map))
		for _, key := range v.Keys {
			out[key] = v.Map[key].Interface()
		}
		return out
	case KindNull:
		return nil
	default:
		return v.Scalar
	}
}
