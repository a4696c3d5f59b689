package subset

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// NFA is a nondeterministic finite automaton with epsilon transitions. States
// are the integers [0, NumStates) and symbols the integers [0, NumSymbols),
// where symbol 0 is Epsilon. The dimensions are fixed at construction time.
//
// An NFA is populated with AddTransition, SetStartStates and SetFinalStates
// and then frozen by Determinize; a frozen NFA rejects further changes and
// may be shared by readers.
type NFA struct {
	numStates  int
	numSymbols int

	// Destination sets indexed by state*numSymbols+symbol; nil until the first
	// transition for that pair is added.
	transitions    []*bitset.BitSet
	numTransitions int

	start *bitset.BitSet
	final *bitset.BitSet

	frozen bool
}

// NewNFA creates an automaton with numStates states and numSymbols symbols,
// Epsilon included.
func NewNFA(numStates, numSymbols int) (*NFA, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("%w: state count %d, need at least 1", ErrInvalidArgument, numStates)
	}
	if numSymbols < 1 {
		return nil, fmt.Errorf("%w: symbol count %d, need at least 1", ErrInvalidArgument, numSymbols)
	}
	return &NFA{
		numStates:   numStates,
		numSymbols:  numSymbols,
		transitions: make([]*bitset.BitSet, numStates*numSymbols),
		start:       bitset.New(uint(numStates)),
		final:       bitset.New(uint(numStates)),
	}, nil
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return n.numStates
}

// NumSymbols How many symbols this automaton has, Epsilon included.
func (n *NFA) NumSymbols() int {
	return n.numSymbols
}

// NumTransitions How many distinct (from, symbol, to) triples were added.
func (n *NFA) NumTransitions() int {
	return n.numTransitions
}

// Symbols yields the real symbols 1..NumSymbols-1 in ascending order.
func (n *NFA) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for s := Symbol(1); int(s) < n.numSymbols; s++ {
			if !yield(s) {
				return
			}
		}
	}
}

func (n *NFA) checkState(state int) error {
	if state < 0 || state >= n.numStates {
		return fmt.Errorf("%w: state %d not in [0, %d)", ErrInvalidArgument, state, n.numStates)
	}
	return nil
}

func (n *NFA) checkSymbol(symbol Symbol) error {
	if symbol < 0 || int(symbol) >= n.numSymbols {
		return fmt.Errorf("%w: symbol %d not in [0, %d)", ErrInvalidArgument, symbol, n.numSymbols)
	}
	return nil
}

// AddTransition adds to to the destinations of (from, symbol). Adding the
// same transition twice has no effect.
func (n *NFA) AddTransition(from int, symbol Symbol, to int) error {
	if n.frozen {
		return ErrFrozen
	}
	if err := n.checkState(from); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := n.checkSymbol(symbol); err != nil {
		return err
	}
	if err := n.checkState(to); err != nil {
		return fmt.Errorf("to: %w", err)
	}

	i := from*n.numSymbols + int(symbol)
	if n.transitions[i] == nil {
		n.transitions[i] = bitset.New(uint(n.numStates))
	}
	if !n.transitions[i].Test(uint(to)) {
		n.transitions[i].Set(uint(to))
		n.numTransitions++
	}
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (n *NFA) AddEpsilon(source, dest int) error {
	return n.AddTransition(source, Epsilon, dest)
}

// SetStartStates replaces the start states. On error the previous start
// states are kept.
func (n *NFA) SetStartStates(states ...int) error {
	bits, err := n.toBits(states)
	if err != nil {
		return fmt.Errorf("start states: %w", err)
	}
	n.start = bits
	return nil
}

// SetFinalStates replaces the accept states. On error the previous accept
// states are kept.
func (n *NFA) SetFinalStates(states ...int) error {
	bits, err := n.toBits(states)
	if err != nil {
		return fmt.Errorf("final states: %w", err)
	}
	n.final = bits
	return nil
}

func (n *NFA) toBits(states []int) (*bitset.BitSet, error) {
	if n.frozen {
		return nil, ErrFrozen
	}
	bits := bitset.New(uint(n.numStates))
	for _, s := range states {
		if err := n.checkState(s); err != nil {
			return nil, err
		}
		bits.Set(uint(s))
	}
	return bits, nil
}

// StartStates returns the start states.
func (n *NFA) StartStates() *StateSet {
	return freezeStateSet(n.start.Clone())
}

// FinalStates returns the accept states.
func (n *NFA) FinalStates() *StateSet {
	return freezeStateSet(n.final.Clone())
}

// IsFinal Returns true if this state is an accept state.
func (n *NFA) IsFinal(state int) bool {
	return state >= 0 && n.final.Test(uint(state))
}

// Destinations returns the states reached from state on symbol. The result is
// empty when nothing was recorded or the arguments are out of range.
func (n *NFA) Destinations(state int, symbol Symbol) *StateSet {
	bits := n.destinations(state, symbol)
	if bits == nil {
		return NewStateSet()
	}
	return freezeStateSet(bits.Clone())
}

func (n *NFA) destinations(state int, symbol Symbol) *bitset.BitSet {
	if n.checkState(state) != nil || n.checkSymbol(symbol) != nil {
		return nil
	}
	return n.transitions[state*n.numSymbols+int(symbol)]
}

// Freeze makes the automaton read-only. Determinize calls it before it starts.
func (n *NFA) Freeze() {
	n.frozen = true
}

func (n *NFA) Frozen() bool {
	return n.frozen
}
