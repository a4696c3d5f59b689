package main

import (
	"fmt"

	"github.com/geange/subset"
	"github.com/geange/subset/internal/nfafile"
	"github.com/spf13/cobra"
)

func newDeterminizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "determinize FILE",
		Aliases: []string{"dfa"},
		Short:   "Print the DFA of an NFA definition",
		Long: `Determinizes the NFA in FILE and prints the resulting DFA as a text listing,
a Graphviz digraph or a YAML snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			d, err := loadDFA(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return subset.WriteText(out, d)
			case "dot":
				return subset.WriteDOT(out, d)
			case "yaml":
				return nfafile.WriteSnapshot(out, d)
			default:
				return fmt.Errorf("unknown format %q (want text, dot or yaml)", format)
			}
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text, dot or yaml")
	return cmd
}
