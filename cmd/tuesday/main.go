// Command tuesday decides DIMACS CNF problems with the classical DP/DPLL
// family of procedures and generates benchmark instances.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/satlib/tuesday"
	"github.com/satlib/tuesday/gen"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tuesday",
		Short:         "Classical DP/DPLL satisfiability procedures",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(solveCmd(), phpCmd())
	return root
}

func solveCmd() *cobra.Command {
	var (
		proc      string
		showStats bool
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "solve [input.cnf]",
		Short: "Decide a DIMACS CNF problem",
		Long: `Solve reads a single problem in the DIMACS CNF format and prints SAT or
UNSAT. If no input file is given, it reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			problem, err := tuesday.ParseDIMACS(r)
			if err != nil {
				return fmt.Errorf("reading DIMACS CNF: %w", err)
			}
			cs, err := tuesday.NewClauseSet(problem)
			if err != nil {
				return err
			}
			logger.Debug("parsed problem", "clauses", len(cs), "proc", proc)

			var (
				sat   bool
				stats tuesday.Stats
			)
			start := time.Now()
			switch proc {
			case "dp":
				sat = tuesday.DP(cs)
			case "dpll":
				sat = tuesday.DPLL(cs)
			case "dpli":
				sat, stats = tuesday.DPLIStats(cs)
			case "dplb":
				sat, stats = tuesday.DPLBStats(cs)
			default:
				return fmt.Errorf("unknown procedure %q (want dp, dpll, dpli or dplb)", proc)
			}
			elapsed := time.Since(start)
			logger.Debug("solved", "sat", sat, "elapsed", elapsed,
				"decisions", stats.Decisions, "propagations", stats.Propagations,
				"conflicts", stats.Conflicts, "learned", stats.Learned)

			if sat {
				fmt.Fprintln(cmd.OutOrStdout(), "SAT")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "UNSAT")
			}
			if showStats {
				fmt.Fprintf(cmd.OutOrStdout(), "c time=%s decisions=%d propagations=%d conflicts=%d learned=%d\n",
					elapsed, stats.Decisions, stats.Propagations, stats.Conflicts, stats.Learned)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&proc, "proc", "p", "dplb", "decision procedure: dp, dpll, dpli or dplb")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print solver counters")
	cmd.Flags().BoolVarP(&debug, "verbose", "v", false, "enable debug logging")
	return cmd
}

func phpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "php <pigeons> <holes>",
		Short: "Emit a pigeonhole instance as DIMACS CNF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pigeons, err := strconv.Atoi(args[0])
			if err != nil || pigeons < 1 {
				return fmt.Errorf("invalid pigeon count %q", args[0])
			}
			holes, err := strconv.Atoi(args[1])
			if err != nil || holes < 1 {
				return fmt.Errorf("invalid hole count %q", args[1])
			}
			return tuesday.WriteDIMACS(cmd.OutOrStdout(), gen.Php(pigeons, holes).Dimacs())
		},
	}
}
