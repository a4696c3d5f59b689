package subset

import "github.com/bits-and-blooms/bitset"

// ReachableStates returns the states reachable from the start states over any
// sequence of transitions, epsilon included.
func (n *NFA) ReachableStates() *StateSet {
	return freezeStateSet(n.reachable())
}

func (n *NFA) reachable() *bitset.BitSet {
	seen := n.start.Clone()
	work := newWorklist[int]()
	for s, ok := seen.NextSet(0); ok; s, ok = seen.NextSet(s + 1) {
		work.push(int(s))
	}

	for state, ok := work.pop(); ok; state, ok = work.pop() {
		for symbol := 0; symbol < n.numSymbols; symbol++ {
			dest := n.transitions[state*n.numSymbols+symbol]
			if dest == nil {
				continue
			}
			for d, more := dest.NextSet(0); more; d, more = dest.NextSet(d + 1) {
				if !seen.Test(d) {
					seen.Set(d)
					work.push(int(d))
				}
			}
		}
	}
	return seen
}

// IsEmpty Returns true if the automaton accepts no strings, that is, no
// accept state is reachable from a start state.
func (n *NFA) IsEmpty() bool {
	return n.reachable().IntersectionCardinality(n.final) == 0
}

// UnreachableStates returns the states no run from a start state can visit.
func (n *NFA) UnreachableStates() *StateSet {
	all := bitset.New(uint(n.numStates))
	all.FlipRange(0, uint(n.numStates))
	return freezeStateSet(all.Difference(n.reachable()))
}
