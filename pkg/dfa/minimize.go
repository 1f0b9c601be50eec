package dfa

import "fmt"

// MinimalStateCount computes the number of Myhill-Nerode equivalence classes
// of the automaton: the state count of its canonical minimal DFA. Only the
// count is computed; the minimized automaton itself is never built.
//
// The algorithm is Hopcroft-style partition refinement. Starting from the
// accepting/non-accepting split, groups are refined against a worklist of
// splitters until stable; processing the smaller half of every split bounds
// the total work. Two states end up in different groups exactly when some
// string drives one to accept and the other to reject.
func (d *DFA) MinimalStateCount() (int, error) {
	if !d.loaded {
		return 0, fmt.Errorf("minimal state count: %w", ErrNotLoaded)
	}

	n := len(d.states)
	if n == 0 {
		return 0, nil
	}

	// Initial partition: group 0 = accepting, group 1 = the rest.
	group := make([]int, n)
	var accepting, rejecting []int
	for i := range d.states {
		if d.states[i].accepting {
			accepting = append(accepting, i)
		} else {
			group[i] = 1
			rejecting = append(rejecting, i)
		}
	}
	if len(accepting) == 0 || len(rejecting) == 0 {
		// All states share one acceptance value: a single class.
		return 1, nil
	}
	members := [][]int{accepting, rejecting}

	// Refinement runs over the symbol set, not the declared alphabet: a
	// repeated alphabet entry would double-insert predecessors and make the
	// intersection sizes lie, splitting off phantom empty groups.
	symbols := make([]string, 0, len(d.symbols))
	seen := make(map[string]struct{}, len(d.symbols))
	for _, symbol := range d.alphabet {
		if _, dup := seen[symbol]; dup {
			continue
		}
		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
	}

	// Reverse-transition index: preds[symbol][state] lists the states that
	// reach it on that symbol.
	preds := make(map[string][][]int, len(symbols))
	for _, symbol := range symbols {
		preds[symbol] = make([][]int, n)
	}
	for i := range d.states {
		for _, symbol := range symbols {
			t := d.states[i].next[symbol]
			preds[symbol][t] = append(preds[symbol][t], i)
		}
	}

	// Worklist of splitter group ids, seeded with the smaller initial group.
	seed := 0
	if len(rejecting) < len(accepting) {
		seed = 1
	}
	worklist := []int{seed}
	pending := make(map[int]bool, 2)
	pending[seed] = true

	for len(worklist) > 0 {
		splitter := worklist[0]
		worklist = worklist[1:]
		pending[splitter] = false

		// Snapshot: the splitter group itself may be refined below.
		inSplitter := append([]int(nil), members[splitter]...)

		for _, symbol := range symbols {
			// X: states whose transition on symbol lands in the splitter.
			var x []int
			for _, t := range inSplitter {
				x = append(x, preds[symbol][t]...)
			}
			if len(x) == 0 {
				continue
			}

			// Partition X by current group membership.
			byGroup := make(map[int][]int)
			var touched []int
			for _, s := range x {
				g := group[s]
				if _, seen := byGroup[g]; !seen {
					touched = append(touched, g)
				}
				byGroup[g] = append(byGroup[g], s)
			}

			for _, g := range touched {
				intersection := byGroup[g]
				if len(intersection) == len(members[g]) {
					// The whole group maps in: nothing to split.
					continue
				}

				// Split: the intersection keeps g, the remainder moves to
				// a fresh group id.
				fresh := len(members)
				inX := make(map[int]struct{}, len(intersection))
				for _, s := range intersection {
					inX[s] = struct{}{}
				}
				var remainder []int
				for _, s := range members[g] {
					if _, ok := inX[s]; !ok {
						remainder = append(remainder, s)
					}
				}
				members[g] = intersection
				members = append(members, remainder)
				for _, s := range remainder {
					group[s] = fresh
				}

				if pending[g] {
					// Both halves of a pending splitter must be revisited.
					worklist = append(worklist, fresh)
					pending[fresh] = true
				} else if len(intersection) <= len(remainder) {
					worklist = append(worklist, g)
					pending[g] = true
				} else {
					worklist = append(worklist, fresh)
					pending[fresh] = true
				}
			}
		}
	}

	return len(members), nil
}
