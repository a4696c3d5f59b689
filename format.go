package subset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteText writes a human readable listing of d: every state, its
// transitions and an [ACCEPT STATE] marker on accepting states.
func WriteText(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "DFA Transitions:")
	for s, set := range d.sets {
		fmt.Fprintf(bw, "State %s transitions:\n", set)
		for label, dest := range d.Transitions(s) {
			fmt.Fprintf(bw, "  Symbol %s -> State %s\n", label, d.sets[dest])
		}
		if d.IsAccept(s) {
			fmt.Fprintln(bw, "  [ACCEPT STATE]")
		}
	}
	return bw.Flush()
}

// WriteDOT writes d in Graphviz format. Nodes are labelled with their NFA
// state sets and accepting states are drawn as double circles.
func WriteDOT(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph DFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for s, set := range d.sets {
		shape := "circle"
		if d.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s, label=%q];\n", s, shape, set.String())
		for label, dest := range d.Transitions(s) {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", s, dest, label.String())
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", d.Start())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// String renders d the way WriteText does.
func (d *DFA) String() string {
	var b strings.Builder
	_ = WriteText(&b, d)
	return b.String()
}
