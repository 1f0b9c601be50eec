package dfa

import "fmt"

// Complement builds a new automaton over the same alphabet that accepts
// exactly the strings this one rejects. The state graph is copied
// isomorphically (same names, same transitions) with every accepting flag
// flipped; the operand is never shared or mutated.
func (d *DFA) Complement() (*DFA, error) {
	if !d.loaded {
		return nil, fmt.Errorf("complement: %w", ErrNotLoaded)
	}

	out := newDerived(d.alphabet)
	for i := range d.states {
		j := out.appendState(d.states[i].name)
		out.states[j].accepting = !d.states[i].accepting
	}
	for i := range d.states {
		for _, symbol := range d.states[i].order {
			out.states[i].setTransition(symbol, d.states[i].next[symbol])
		}
	}
	out.initial = d.initial
	return out, nil
}

// Union builds the product automaton accepting the union of both languages.
// Each product state pairs one state from each operand (named by joining the
// two source names), accepts when either source accepts, and advances both
// operands synchronously on every symbol. The result has
// |states1| x |states2| states; no minimization is applied.
func (d *DFA) Union(other *DFA) (*DFA, error) {
	if err := d.checkOperands(other); err != nil {
		return nil, fmt.Errorf("union: %w", err)
	}

	out := newDerived(d.alphabet)
	n := len(other.states)
	for i := range d.states {
		for j := range other.states {
			// Positional indexing (i*n+j) keeps the product well-defined
			// even if two different pairs happen to join to the same name.
			k := out.appendState(pairName(d.states[i].name, other.states[j].name))
			out.states[k].accepting = d.states[i].accepting || other.states[j].accepting
		}
	}
	for i := range d.states {
		for j := range other.states {
			k := i*n + j
			for _, symbol := range d.alphabet {
				di := d.states[i].next[symbol]
				dj := other.states[j].next[symbol]
				out.states[k].setTransition(symbol, di*n+dj)
			}
		}
	}
	out.initial = d.initial*n + other.initial
	return out, nil
}

// Intersect builds an automaton accepting the intersection of both
// languages, derived by De Morgan's law from Complement and Union rather
// than a dedicated product rule.
func (d *DFA) Intersect(other *DFA) (*DFA, error) {
	if err := d.checkOperands(other); err != nil {
		return nil, fmt.Errorf("intersect: %w", err)
	}

	notA, err := d.Complement()
	if err != nil {
		return nil, err
	}
	notB, err := other.Complement()
	if err != nil {
		return nil, err
	}
	either, err := notA.Union(notB)
	if err != nil {
		return nil, err
	}
	return either.Complement()
}

// SymmetricDifference builds an automaton accepting strings in exactly one
// of the two languages: (A or B) and not (A and B). It composes Union,
// Intersect and Complement, so the result can reach the fourth power of the
// operand sizes; callers needing a compact automaton minimize afterwards.
func (d *DFA) SymmetricDifference(other *DFA) (*DFA, error) {
	if err := d.checkOperands(other); err != nil {
		return nil, fmt.Errorf("symmetric difference: %w", err)
	}

	either, err := d.Union(other)
	if err != nil {
		return nil, err
	}
	both, err := d.Intersect(other)
	if err != nil {
		return nil, err
	}
	notBoth, err := both.Complement()
	if err != nil {
		return nil, err
	}
	return either.Intersect(notBoth)
}

func (d *DFA) checkOperands(other *DFA) error {
	if !d.loaded || !other.loaded {
		return ErrNotLoaded
	}
	if !d.sameAlphabet(other) {
		return ErrAlphabetMismatch
	}
	return nil
}

func pairName(a, b string) string {
	return a + "_" + b
}
