package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geange/subset"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE [INPUT...]",
		Short: "Run inputs through the DFA of an NFA definition",
		Long: `Determinizes the NFA in FILE and reports, for every INPUT, whether the DFA
accepts it. An INPUT is a comma separated list of symbol ids, e.g. "1,2,1";
an empty string is the empty input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([][]subset.Symbol, 0, len(args)-1)
			for _, arg := range args[1:] {
				input, err := parseInput(arg)
				if err != nil {
					return err
				}
				inputs = append(inputs, input)
			}

			d, err := loadDFA(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, input := range inputs {
				verdict := "reject"
				if d.Run(input...) {
					verdict = "accept"
				}
				if _, err := fmt.Fprintf(out, "%q\t%s\n", args[i+1], verdict); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func parseInput(arg string) ([]subset.Symbol, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	fields := strings.Split(arg, ",")
	input := make([]subset.Symbol, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", arg, err)
		}
		input = append(input, subset.Symbol(v))
	}
	return input, nil
}
