package dfa

import "fmt"

// state is one node of the automaton graph. Transitions store indices into
// the owning DFA's state slice rather than pointers, so the graph has no
// cyclic ownership and a DFA can be copied by value.
type state struct {
	name      string
	accepting bool
	next      map[string]int
	// order records symbol insertion order. Witness search enqueues
	// successors in this order, which follows the specification's declared
	// order for loaded automatons and construction order for derived ones.
	order []string
}

func (s *state) setTransition(symbol string, dest int) {
	if _, exists := s.next[symbol]; !exists {
		s.order = append(s.order, symbol)
	}
	s.next[symbol] = dest
}

// DFA is a deterministic finite automaton: a fixed alphabet of
// single-character symbols, an owned set of named states, one initial state
// and a total transition function. A DFA is populated once, either by Load or
// by an algebra operation, and is never mutated afterwards, so concurrent
// readers need no synchronization.
type DFA struct {
	alphabet []string
	symbols  map[string]struct{}
	states   []state
	index    map[string]int
	initial  int
	loaded   bool
}

// New creates an empty, unloaded automaton. Operating on it before a
// successful Load returns ErrNotLoaded.
func New() *DFA {
	return &DFA{
		symbols: make(map[string]struct{}),
		index:   make(map[string]int),
	}
}

// newDerived creates a loaded automaton sharing the given alphabet, used by
// the algebra operations. The alphabet slice is copied.
func newDerived(alphabet []string) *DFA {
	d := New()
	d.setAlphabet(alphabet)
	d.loaded = true
	return d
}

func (d *DFA) setAlphabet(alphabet []string) {
	d.alphabet = append([]string(nil), alphabet...)
	for _, sym := range alphabet {
		d.symbols[sym] = struct{}{}
	}
}

// addState appends a state and returns its index. Re-adding a known name
// returns the existing index, keeping names unique within the automaton.
func (d *DFA) addState(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	i := len(d.states)
	d.states = append(d.states, state{name: name, next: make(map[string]int)})
	d.index[name] = i
	return i
}

// appendState appends a state without deduplicating by name, for derived
// automatons whose correctness rests on positional indices.
func (d *DFA) appendState(name string) int {
	i := len(d.states)
	d.states = append(d.states, state{name: name, next: make(map[string]int)})
	if _, ok := d.index[name]; !ok {
		d.index[name] = i
	}
	return i
}

// Loaded reports whether the automaton has been populated by a successful
// Load or built by an algebra operation.
func (d *DFA) Loaded() bool { return d.loaded }

// StateCount returns the number of states the automaton owns.
func (d *DFA) StateCount() int { return len(d.states) }

// Alphabet returns a copy of the alphabet in declared order.
func (d *DFA) Alphabet() []string {
	return append([]string(nil), d.alphabet...)
}

// InitialState returns the name of the initial state.
func (d *DFA) InitialState() (string, error) {
	if !d.loaded {
		return "", ErrNotLoaded
	}
	return d.states[d.initial].name, nil
}

// sameAlphabet reports set equality; declaration order is irrelevant when
// combining automatons.
func (d *DFA) sameAlphabet(other *DFA) bool {
	if len(d.symbols) != len(other.symbols) {
		return false
	}
	for sym := range d.symbols {
		if _, ok := other.symbols[sym]; !ok {
			return false
		}
	}
	return true
}

// AcceptResult reports the outcome of evaluating a string.
// Accepted is only meaningful when Success is true.
type AcceptResult struct {
	Success  bool     `json:"success"`
	Accepted bool     `json:"accepted"`
	Errors   []string `json:"errors"`
}

// Accepts runs the input through the automaton one symbol at a time,
// starting at the initial state. The first character outside the alphabet
// fails the evaluation immediately; the rest of the string is not examined.
func (d *DFA) Accepts(input string) (AcceptResult, error) {
	if !d.loaded {
		return AcceptResult{}, fmt.Errorf("accepts: %w", ErrNotLoaded)
	}

	current := d.initial
	for _, r := range input {
		symbol := string(r)
		if _, ok := d.symbols[symbol]; !ok {
			return AcceptResult{
				Success: false,
				Errors:  []string{fmt.Sprintf("Symbol '%s' not in alphabet.", symbol)},
			}, nil
		}
		current = d.states[current].next[symbol]
	}

	return AcceptResult{
		Success:  true,
		Accepted: d.states[current].accepting,
		Errors:   []string{},
	}, nil
}
