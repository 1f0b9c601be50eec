package dfa

import "fmt"

// queueItem pairs a state with the exact input string that reaches it from
// the initial state.
type queueItem struct {
	state int
	path  string
}

// FindExample breadth-first searches the transition graph for the first
// reachable state whose accepting flag equals the target, and returns the
// input string that reaches it. The visited set guarantees termination on
// cyclic graphs. Returns ok=false when the whole reachable graph is
// exhausted without a match (no witness exists).
//
// Successors are enqueued in each state's transition declaration order, so
// the result is shortest by search order but not necessarily the
// lexicographically smallest string of that length.
func (d *DFA) FindExample(accepted bool) (example string, ok bool, err error) {
	if !d.loaded {
		return "", false, fmt.Errorf("find example: %w", ErrNotLoaded)
	}

	visited := make(map[int]struct{}, len(d.states))
	queue := []queueItem{{state: d.initial}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if _, seen := visited[item.state]; seen {
			continue
		}
		visited[item.state] = struct{}{}

		s := &d.states[item.state]
		if s.accepting == accepted {
			return item.path, true, nil
		}

		for _, symbol := range s.order {
			queue = append(queue, queueItem{state: s.next[symbol], path: item.path + symbol})
		}
	}

	return "", false, nil
}
