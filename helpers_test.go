package subset

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type triple struct {
	from   int
	symbol Symbol
	to     int
}

// buildNFA creates an NFA from transition triples.
func buildNFA(t *testing.T, numStates, numSymbols int, start, final []int, transitions ...triple) *NFA {
	t.Helper()
	n, err := NewNFA(numStates, numSymbols)
	require.NoError(t, err)
	for _, tr := range transitions {
		require.NoError(t, n.AddTransition(tr.from, tr.symbol, tr.to))
	}
	require.NoError(t, n.SetStartStates(start...))
	require.NoError(t, n.SetFinalStates(final...))
	return n
}

// randomTriples draws a random automaton shape from r. About a third of the
// transitions are epsilon transitions.
func randomTriples(r *rand.Rand, numStates, numSymbols int) []triple {
	count := r.IntN(numStates*numSymbols*2 + 1)
	triples := make([]triple, 0, count)
	for i := 0; i < count; i++ {
		symbol := Symbol(1 + r.IntN(numSymbols-1))
		if r.IntN(3) == 0 {
			symbol = Epsilon
		}
		triples = append(triples, triple{r.IntN(numStates), symbol, r.IntN(numStates)})
	}
	return triples
}

func randomStates(r *rand.Rand, numStates int) []int {
	var states []int
	for s := 0; s < numStates; s++ {
		if r.IntN(3) == 0 {
			states = append(states, s)
		}
	}
	return states
}

type randomAutomaton struct {
	numStates, numSymbols int
	start, final          []int
	triples               []triple
}

func newRandomAutomaton(r *rand.Rand) randomAutomaton {
	numStates := 1 + r.IntN(6)
	numSymbols := 2 + r.IntN(3)
	return randomAutomaton{
		numStates:  numStates,
		numSymbols: numSymbols,
		start:      append(randomStates(r, numStates), r.IntN(numStates)),
		final:      randomStates(r, numStates),
		triples:    randomTriples(r, numStates, numSymbols),
	}
}

func (ra randomAutomaton) build(t *testing.T) *NFA {
	return buildNFA(t, ra.numStates, ra.numSymbols, ra.start, ra.final, ra.triples...)
}

func randomInput(r *rand.Rand, numSymbols, maxLen int) []Symbol {
	input := make([]Symbol, r.IntN(maxLen+1))
	for i := range input {
		input[i] = Symbol(1 + r.IntN(numSymbols-1))
	}
	return input
}

// edgeSet flattens a DFA into a comparable set of "from -a-> to" strings.
func edgeSet(d *DFA) map[string]struct{} {
	edges := make(map[string]struct{})
	for e := range d.Edges() {
		edges[fmt.Sprintf("%s -%s-> %s", e.From, e.Symbol, e.To)] = struct{}{}
	}
	for s := 0; s < d.NumStates(); s++ {
		edges[fmt.Sprintf("state %s accept=%v", d.StateSet(s), d.IsAccept(s))] = struct{}{}
	}
	return edges
}

// bruteAccepts explores every nondeterministic path of n over input one
// configuration (state, position) at a time, independent of EpsilonClosure.
func bruteAccepts(n *NFA, input []Symbol) bool {
	type config struct{ state, pos int }
	seen := make(map[config]bool)
	var queue []config
	for _, s := range n.StartStates().Values() {
		c := config{s, 0}
		seen[c] = true
		queue = append(queue, c)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c.pos == len(input) && n.IsFinal(c.state) {
			return true
		}

		var next []config
		for _, d := range n.Destinations(c.state, Epsilon).Values() {
			next = append(next, config{d, c.pos})
		}
		if c.pos < len(input) {
			for _, d := range n.Destinations(c.state, input[c.pos]).Values() {
				next = append(next, config{d, c.pos + 1})
			}
		}
		for _, nc := range next {
			if !seen[nc] {
				seen[nc] = true
				queue = append(queue, nc)
			}
		}
	}
	return false
}
