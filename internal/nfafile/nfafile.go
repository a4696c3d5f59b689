// Package nfafile reads NFA definitions from YAML and writes determinized
// automata back as YAML snapshots.
//
// A definition looks like:
//
//	states: 3
//	symbols: 2          # epsilon (0) included
//	start: [0]
//	final: [2]
//	transitions:
//	  - {from: 0, symbol: 0, to: 1}
//	  - {from: 1, symbol: 1, to: 2}
package nfafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/geange/subset"
	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of an NFA.
type Definition struct {
	States      int          `yaml:"states"`
	Symbols     int          `yaml:"symbols"`
	Start       []int        `yaml:"start"`
	Final       []int        `yaml:"final"`
	Transitions []Transition `yaml:"transitions"`
}

// Transition is one (from, symbol, to) triple. Symbol 0 is epsilon.
type Transition struct {
	From   int `yaml:"from"`
	Symbol int `yaml:"symbol"`
	To     int `yaml:"to"`
}

// Load decodes a definition. Unknown keys are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("yaml decode: empty definition")
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return &def, nil
}

// LoadFile reads a definition from path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	def, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Build creates the NFA described by d. Out-of-range ids are reported with
// the index of the offending transition and wrap subset.ErrInvalidArgument.
func (d *Definition) Build() (*subset.NFA, error) {
	n, err := subset.NewNFA(d.States, d.Symbols)
	if err != nil {
		return nil, err
	}
	for i, t := range d.Transitions {
		if err := n.AddTransition(t.From, subset.Symbol(t.Symbol), t.To); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}
	if err := n.SetStartStates(d.Start...); err != nil {
		return nil, err
	}
	if err := n.SetFinalStates(d.Final...); err != nil {
		return nil, err
	}
	return n, nil
}

// Snapshot is the on-disk form of a DFA. State ids are those of the DFA and
// each state lists the NFA states it stands for.
type Snapshot struct {
	Start  int     `yaml:"start"`
	States []State `yaml:"states"`
}

type State struct {
	ID          int    `yaml:"id"`
	Set         []int  `yaml:"set"`
	Accept      bool   `yaml:"accept,omitempty"`
	Transitions []Edge `yaml:"transitions,omitempty"`
}

type Edge struct {
	Symbol int `yaml:"symbol"`
	To     int `yaml:"to"`
}

// NewSnapshot captures d.
func NewSnapshot(d *subset.DFA) Snapshot {
	snap := Snapshot{
		Start:  d.Start(),
		States: make([]State, 0, d.NumStates()),
	}
	for s := 0; s < d.NumStates(); s++ {
		state := State{
			ID:     s,
			Set:    d.StateSet(s).Values(),
			Accept: d.IsAccept(s),
		}
		for label, dest := range d.Transitions(s) {
			state.Transitions = append(state.Transitions, Edge{Symbol: int(label), To: dest})
		}
		snap.States = append(snap.States, state)
	}
	return snap
}

// WriteSnapshot encodes the snapshot of d to w.
func WriteSnapshot(w io.Writer, d *subset.DFA) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(d)); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("yaml decode: %w", err)
	}
	return snap, nil
}
