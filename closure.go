package subset

import "github.com/bits-and-blooms/bitset"

// EpsilonClosure returns the smallest superset of seed that is closed under
// epsilon transitions. Every member of seed is part of the result.
func (n *NFA) EpsilonClosure(seed *StateSet) *StateSet {
	return freezeStateSet(n.epsilonClosure(seed.bits.Clone()))
}

// epsilonClosure grows set in place and returns it. Each state enters the
// worklist at most once.
func (n *NFA) epsilonClosure(set *bitset.BitSet) *bitset.BitSet {
	work := newWorklist[int]()
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		work.push(int(s))
	}

	for state, ok := work.pop(); ok; state, ok = work.pop() {
		eps := n.destinations(state, Epsilon)
		if eps == nil {
			continue
		}
		for d, more := eps.NextSet(0); more; d, more = eps.NextSet(d + 1) {
			if !set.Test(d) {
				set.Set(d)
				work.push(int(d))
			}
		}
	}
	return set
}

// Move returns the union of the symbol destinations of every state in set,
// without following epsilon transitions.
func (n *NFA) Move(set *StateSet, symbol Symbol) *StateSet {
	return freezeStateSet(n.move(set, symbol))
}

func (n *NFA) move(set *StateSet, symbol Symbol) *bitset.BitSet {
	result := bitset.New(uint(n.numStates))
	for _, s := range set.values {
		if dest := n.destinations(s, symbol); dest != nil {
			result.InPlaceUnion(dest)
		}
	}
	return result
}
