package subset

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// DFA is the deterministic automaton produced by Determinize. Every DFA state
// is identified by the set of NFA states it stands for; states are numbered
// densely in discovery order and state 0 is the start state.
//
// A missing transition means rejection. A DFA is read-only once built.
type DFA struct {
	// NFA state set of each DFA state, and the reverse canonical table.
	sets []*StateSet
	ids  *HashMap[int]

	// Index in the transitions array where this state's leaving transitions
	// are stored, or -1 if it has none, followed by the number of transitions.
	states []int

	// Holds dest, label for each transition, sorted by label within a state.
	transitions []int

	// Accept states of the source NFA. Acceptance of a DFA state is derived
	// from it on demand.
	final *bitset.BitSet

	numSymbols int
}

// Edge is one DFA transition expressed with state sets.
type Edge struct {
	From   *StateSet
	Symbol Symbol
	To     *StateSet
}

func newDFA(n *NFA) *DFA {
	return &DFA{
		sets:        make([]*StateSet, 0, n.numStates),
		ids:         NewHashMap[int](WithCapacity(n.numStates)),
		states:      make([]int, 0, 2*n.numStates),
		transitions: make([]int, 0, 2*n.numStates),
		final:       n.final,
		numSymbols:  n.numSymbols,
	}
}

// createState registers set as a new DFA state and returns its id.
func (d *DFA) createState(set *StateSet) int {
	state := len(d.sets)
	d.sets = append(d.sets, set)
	d.ids.Set(set, state)
	d.states = append(d.states, -1, 0)
	return state
}

// addTransition adds source --label--> dest. All transitions of a state must
// be added together and in ascending label order.
func (d *DFA) addTransition(source, dest int, label Symbol) error {
	offset, count := d.states[2*source], d.states[2*source+1]
	switch {
	case offset == -1:
		d.states[2*source] = len(d.transitions)
	case offset+2*count != len(d.transitions):
		return fmt.Errorf("state %d already had transitions added", source)
	case Symbol(d.transitions[len(d.transitions)-1]) >= label:
		return fmt.Errorf("state %d: label %s added out of order", source, label)
	}

	d.transitions = append(d.transitions, dest, int(label))
	d.states[2*source+1]++
	return nil
}

// Start returns the start state, always 0.
func (d *DFA) Start() int {
	return 0
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.sets)
}

// NumTransitions How many transitions this automaton has.
func (d *DFA) NumTransitions() int {
	return len(d.transitions) / 2
}

// GetNumTransitionsWithState How many transitions this state has.
func (d *DFA) GetNumTransitionsWithState(state int) int {
	return d.states[2*state+1]
}

// StateSet returns the NFA states making up a DFA state.
func (d *DFA) StateSet(state int) *StateSet {
	return d.sets[state]
}

// Lookup returns the DFA state whose NFA state set equals set.
func (d *DFA) Lookup(set *StateSet) (int, bool) {
	return d.ids.Get(set)
}

// IsAccept Returns true if this state contains an accept state of the NFA.
func (d *DFA) IsAccept(state int) bool {
	return state >= 0 && state < len(d.sets) && d.IsAcceptSet(d.sets[state])
}

// IsAcceptSet reports whether set intersects the NFA's accept states. The set
// does not have to be a state of d.
func (d *DFA) IsAcceptSet(set *StateSet) bool {
	return set.bits.IntersectionCardinality(d.final) > 0
}

// AcceptStates returns the accepting states in ascending order.
func (d *DFA) AcceptStates() []int {
	var accept []int
	for s := range d.sets {
		if d.IsAccept(s) {
			accept = append(accept, s)
		}
	}
	return accept
}

// IsEmpty Returns true if the automaton accepts no strings. All states of a
// DFA built by Determinize are reachable from the start state.
func (d *DFA) IsEmpty() bool {
	for s := range d.sets {
		if d.IsAccept(s) {
			return false
		}
	}
	return true
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (d *DFA) Step(state int, label Symbol) int {
	if state < 0 || state >= len(d.sets) {
		return -1
	}
	first, numTransitions := d.states[2*state], d.states[2*state+1]

	// Since transitions are sorted, binary search the label.
	low, high := 0, numTransitions-1
	for low <= high {
		mid := (low + high) >> 1
		i := first + 2*mid
		switch l := Symbol(d.transitions[i+1]); {
		case l > label:
			high = mid - 1
		case l < label:
			low = mid + 1
		default:
			return d.transitions[i]
		}
	}
	return -1
}

// Transitions yields the label and destination of every transition leaving
// state, by ascending label.
func (d *DFA) Transitions(state int) iter.Seq2[Symbol, int] {
	return func(yield func(Symbol, int) bool) {
		first, count := d.states[2*state], d.states[2*state+1]
		for i := 0; i < count; i++ {
			t := first + 2*i
			if !yield(Symbol(d.transitions[t+1]), d.transitions[t]) {
				return
			}
		}
	}
}

// Edges yields every transition of the automaton, state by state.
func (d *DFA) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for s, from := range d.sets {
			for label, dest := range d.Transitions(s) {
				if !yield(Edge{From: from, Symbol: label, To: d.sets[dest]}) {
					return
				}
			}
		}
	}
}
