package subset

import "strconv"

// Symbol is an input label of an automaton. Real symbols are numbered from 1;
// Epsilon is the only symbol consumed without reading input.
type Symbol int

// Epsilon labels transitions taken without consuming input.
const Epsilon Symbol = 0

func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return strconv.Itoa(int(s))
}
