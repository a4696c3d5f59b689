package subset

import "errors"

var (
	// ErrInvalidArgument is returned when a state or symbol id is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFrozen is returned when an NFA is modified after determinization
	// started.
	ErrFrozen = errors.New("automaton is frozen")

	// ErrTooComplex is returned when determinization would create more DFA
	// states than the configured work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)
