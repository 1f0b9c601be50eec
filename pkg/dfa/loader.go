package dfa

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/automark/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Result reports the outcome of loading a specification. On failure, Errors
// holds one human-readable message per violation, in document order.
type Result struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// specFields declares the shape tier: the five required fields and their
// nested structure. Shape violations short-circuit loading; the semantic
// tier never runs on a malformed document.
var specFields = []schema.Field{
	{Key: "alphabet", Type: schema.Slice(schema.String())},
	{Key: "states", Type: schema.Slice(schema.String())},
	{Key: "initial_state", Type: schema.String()},
	{Key: "accepting_states", Type: schema.Slice(schema.String())},
	{Key: "transitions", Type: schema.Map(schema.Map(schema.String()))},
}

// specDocument carries the flat fields of a shape-checked specification.
// Transitions are walked on the ordered document tree instead, so semantic
// diagnostics keep the author's declaration order.
type specDocument struct {
	Alphabet        []string `mapstructure:"alphabet"`
	States          []string `mapstructure:"states"`
	InitialState    string   `mapstructure:"initial_state"`
	AcceptingStates []string `mapstructure:"accepting_states"`
}

// Load parses a YAML specification and populates the automaton. It validates
// in two disjoint tiers: shape first (field presence and nesting, one error
// per violated field path, semantic checks skipped on failure), then
// semantics (single-character symbols, referential integrity, totality),
// accumulated exhaustively. The automaton is usable only when Result.Success
// is true.
func (d *DFA) Load(source string) Result {
	return d.load([]byte(source))
}

// LoadFile reads a specification from disk and delegates to Load.
func (d *DFA) LoadFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{
			Success: false,
			Errors:  []string{fmt.Sprintf("Failed to read specification file: %v", err)},
		}
	}
	return d.load(data)
}

func (d *DFA) load(data []byte) Result {
	d.reset()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Result{
			Success: false,
			Errors:  []string{"YAML parsing error: " + strings.ReplaceAll(err.Error(), "\n", " ")},
		}
	}

	doc := documentValue(&root)

	// Shape tier.
	if err := schema.Validate(specFields, doc); err != nil {
		return Result{Success: false, Errors: schema.Messages(err)}
	}

	var spec specDocument
	if err := mapstructure.Decode(doc.Interface(), &spec); err != nil {
		return Result{
			Success: false,
			Errors:  []string{fmt.Sprintf("Failed to decode specification: %v", err)},
		}
	}

	// Semantic tier: accumulate every violation before reporting.
	var errs []string

	d.setAlphabet(spec.Alphabet)
	for _, symbol := range spec.Alphabet {
		if utf8.RuneCountInString(symbol) != 1 {
			errs = append(errs, fmt.Sprintf("Symbol '%s' is not a single character.", symbol))
		}
	}

	for _, name := range spec.States {
		d.addState(name)
	}

	if i, ok := d.index[spec.InitialState]; ok {
		d.initial = i
	} else {
		errs = append(errs, fmt.Sprintf("Initial state '%s' not in states.", spec.InitialState))
	}

	for _, name := range spec.AcceptingStates {
		if i, ok := d.index[name]; ok {
			d.states[i].accepting = true
		} else {
			errs = append(errs, fmt.Sprintf("Accepting state '%s' not in states.", name))
		}
	}

	transitions, _ := doc.Get("transitions")
	for _, source := range transitions.Keys {
		si, ok := d.index[source]
		if !ok {
			errs = append(errs, fmt.Sprintf("State '%s' in transition function not in states.", source))
			continue
		}
		row := transitions.Map[source]
		for _, symbol := range row.Keys {
			dest := row.Map[symbol].Scalar
			di, ok := d.index[dest]
			if !ok {
				errs = append(errs, fmt.Sprintf("State '%s' in transition function not in states.", dest))
				continue
			}
			d.states[si].setTransition(symbol, di)
		}
	}

	// Totality only makes sense once the references above are clean.
	if len(errs) == 0 {
		for i := range d.states {
			for _, symbol := range d.alphabet {
				if _, ok := d.states[i].next[symbol]; !ok {
					errs = append(errs, fmt.Sprintf("State '%s' missing transition for symbol '%s'.", d.states[i].name, symbol))
				}
			}
		}
	}

	d.loaded = len(errs) == 0
	if errs == nil {
		errs = []string{}
	}
	return Result{Success: d.loaded, Errors: errs}
}

// reset clears any previous population so an automaton can be reloaded.
func (d *DFA) reset() {
	d.alphabet = nil
	d.symbols = make(map[string]struct{})
	d.states = nil
	d.index = make(map[string]int)
	d.initial = 0
	d.loaded = false
}

// documentValue converts a parsed YAML tree into the ordered schema document.
// Scalars keep their literal text (no implicit typing), so `1` and `"1"`
// name the same symbol, and mapping keys preserve declaration order.
func documentValue(n *yaml.Node) schema.Value {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return schema.MappingValue()
		}
		return documentValue(n.Content[0])
	case yaml.AliasNode:
		return documentValue(n.Alias)
	case yaml.SequenceNode:
		items := make([]schema.Value, len(n.Content))
		for i, child := range n.Content {
			items[i] = documentValue(child)
		}
		return schema.SequenceValue(items...)
	case yaml.MappingNode:
		m := schema.MappingValue()
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, documentValue(n.Content[i+1]))
		}
		return m
	case yaml.ScalarNode:
		// An empty value after a key ("initial_state:") parses as a null
		// scalar, not an empty string. Keep the distinction so the shape
		// tier rejects it where a string is required.
		if n.Tag == "!!null" {
			return schema.NullValue()
		}
		return schema.ScalarValue(n.Value)
	default:
		// Zero node: an empty document.
		return schema.MappingValue()
	}
}
