package subset

import (
	"context"
	"fmt"
	"log/slog"
)

type determinizeOptions struct {
	workLimit int
	logger    *slog.Logger
}

type Option func(*determinizeOptions)

// WithWorkLimit bounds the number of DFA states Determinize may create. Zero,
// the default, means no limit.
func WithWorkLimit(limit int) Option {
	return func(o *determinizeOptions) {
		o.workLimit = limit
	}
}

// WithLogger sets the logger used for debug output. Logging is discarded by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *determinizeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newDeterminizeOptions(opts ...Option) *determinizeOptions {
	o := &determinizeOptions{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Determinize Determinizes the given automaton using the subset construction.
// The NFA is frozen first and must not change while this runs.
//
// The start state of the result is the epsilon closure of the NFA's start
// states. For every state S and every real symbol a, the successor is the
// epsilon closure of the a-successors of S; when that set is empty no
// transition is recorded. Sets with equal members are the same DFA state.
//
// Worst case complexity: exponential in number of states. ctx is checked
// between two DFA states; the only errors are ctx.Err() and ErrTooComplex
// when a work limit is set.
func Determinize(ctx context.Context, n *NFA, opts ...Option) (*DFA, error) {
	o := newDeterminizeOptions(opts...)
	n.Freeze()

	d := newDFA(n)
	start := freezeStateSet(n.epsilonClosure(n.start.Clone()))
	d.createState(start)
	o.logger.Debug("determinize start",
		"nfa_states", n.numStates,
		"symbols", n.numSymbols-1,
		"start", start.String(),
	)

	work := newWorklist(d.Start())
	for state, ok := work.pop(); ok; state, ok = work.pop() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("determinize: %w", err)
		}

		set := d.sets[state]
		for symbol := range n.Symbols() {
			moved := n.move(set, symbol)
			if moved.None() {
				continue
			}
			target := freezeStateSet(n.epsilonClosure(moved))

			dest, seen := d.ids.Get(target)
			if !seen {
				if o.workLimit > 0 && d.NumStates() >= o.workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, o.workLimit)
				}
				dest = d.createState(target)
				work.push(dest)
			}
			if err := d.addTransition(state, dest, symbol); err != nil {
				return nil, err
			}
		}
	}

	o.logger.Debug("determinize done",
		"dfa_states", d.NumStates(),
		"transitions", d.NumTransitions(),
		"accept_states", len(d.AcceptStates()),
	)
	return d, nil
}
