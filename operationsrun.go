package subset

// Walk follows input from the start state. It returns the state reached and
// true, or -1 and false as soon as a symbol has no transition.
func (d *DFA) Walk(input ...Symbol) (int, bool) {
	state := d.Start()
	for _, v := range input {
		nextState := d.Step(state, v)
		if nextState == -1 {
			return -1, false
		}
		state = nextState
	}
	return state, true
}

// Run Returns true if the given input is accepted by this automaton.
func (d *DFA) Run(input ...Symbol) bool {
	state, ok := d.Walk(input...)
	return ok && d.IsAccept(state)
}

// Accepts simulates the NFA on input by tracking every state it can be in.
// Epsilon and out-of-range symbols in input are rejected.
func (n *NFA) Accepts(input ...Symbol) bool {
	current := n.epsilonClosure(n.start.Clone())
	for _, v := range input {
		if v == Epsilon {
			return false
		}
		next := n.move(freezeStateSet(current), v)
		if next.None() {
			return false
		}
		current = n.epsilonClosure(next)
	}
	return current.IntersectionCardinality(n.final) > 0
}
