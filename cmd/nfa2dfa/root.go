package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geange/subset"
	"github.com/geange/subset/internal/nfafile"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nfa2dfa",
		Short: "Determinize epsilon-NFAs with the subset construction",
		Long: `nfa2dfa reads an NFA definition (YAML) and converts it into an equivalent
DFA whose states are sets of NFA states.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Int("work-limit", 0, "Maximum number of DFA states (0 = unlimited)")

	rootCmd.AddCommand(newDeterminizeCmd(), newRunCmd())
	return rootCmd
}

// newLogger logs to the command's error stream.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadDFA reads the definition at path and determinizes it.
func loadDFA(ctx context.Context, cmd *cobra.Command, path string) (*subset.DFA, error) {
	logger := newLogger(cmd)
	workLimit, _ := cmd.Flags().GetInt("work-limit")

	def, err := nfafile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if unreachable := n.UnreachableStates(); !unreachable.IsEmpty() {
		logger.Debug("unreachable nfa states", "states", unreachable.String())
	}

	d, err := subset.Determinize(ctx, n,
		subset.WithWorkLimit(workLimit),
		subset.WithLogger(logger.With("file", path)),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.IsEmpty() {
		logger.Warn("automaton accepts no input", "file", path)
	}
	return d, nil
}
