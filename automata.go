package subset

// Automata builds small standard NFAs over numSymbols symbols, Epsilon
// included.
type Automata struct {
	numSymbols int
}

func NewAutomata(numSymbols int) *Automata {
	return &Automata{numSymbols: numSymbols}
}

// MakeEmpty
// Returns a new automaton with the empty language.
func (a *Automata) MakeEmpty() (*NFA, error) {
	n, err := NewNFA(1, a.numSymbols)
	if err != nil {
		return nil, err
	}
	if err := n.SetStartStates(0); err != nil {
		return nil, err
	}
	return n, nil
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (a *Automata) MakeEmptyString() (*NFA, error) {
	n, err := a.MakeEmpty()
	if err != nil {
		return nil, err
	}
	if err := n.SetFinalStates(0); err != nil {
		return nil, err
	}
	return n, nil
}

// MakeAnyString
// Returns a new automaton that accepts all strings.
func (a *Automata) MakeAnyString() (*NFA, error) {
	n, err := a.MakeEmptyString()
	if err != nil {
		return nil, err
	}
	for symbol := range n.Symbols() {
		if err := n.AddTransition(0, symbol, 0); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MakeString
// Returns a new automaton that accepts exactly the given sequence. Every
// symbol is followed by an epsilon hop.
func (a *Automata) MakeString(s ...Symbol) (*NFA, error) {
	n, err := NewNFA(2*len(s)+1, a.numSymbols)
	if err != nil {
		return nil, err
	}
	for i, symbol := range s {
		if err := n.AddTransition(2*i, symbol, 2*i+1); err != nil {
			return nil, err
		}
		if err := n.AddEpsilon(2*i+1, 2*i+2); err != nil {
			return nil, err
		}
	}
	if err := n.SetStartStates(0); err != nil {
		return nil, err
	}
	if err := n.SetFinalStates(2 * len(s)); err != nil {
		return nil, err
	}
	return n, nil
}

// MakeUnion
// Returns a new automaton accepting the strings of any of the given
// sequences: a fresh start state with an epsilon transition into one
// MakeString branch per sequence.
func (a *Automata) MakeUnion(strs ...[]Symbol) (*NFA, error) {
	numStates := 1
	for _, s := range strs {
		numStates += 2*len(s) + 1
	}
	n, err := NewNFA(numStates, a.numSymbols)
	if err != nil {
		return nil, err
	}

	var final []int
	offset := 1
	for _, s := range strs {
		if err := n.AddEpsilon(0, offset); err != nil {
			return nil, err
		}
		for i, symbol := range s {
			if err := n.AddTransition(offset+2*i, symbol, offset+2*i+1); err != nil {
				return nil, err
			}
			if err := n.AddEpsilon(offset+2*i+1, offset+2*i+2); err != nil {
				return nil, err
			}
		}
		final = append(final, offset+2*len(s))
		offset += 2*len(s) + 1
	}

	if err := n.SetStartStates(0); err != nil {
		return nil, err
	}
	if err := n.SetFinalStates(final...); err != nil {
		return nil, err
	}
	return n, nil
}
