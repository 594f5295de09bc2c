package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/fmcparse"
	"github.com/ehrlich-b/fmc-solver/internal/solve"
)

var (
	solveScramble string
	solveSteps    string
	solveMax      int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find solutions for a scramble using the configured stage pipeline",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveScramble, "scramble", "s", "", "scramble move sequence, e.g. \"R U R' U'\"")
	solveCmd.Flags().StringVar(&solveSteps, "steps", "eo:0-5,dr:0-12,htr:0-14,fr:0-16,fin:0-20", "comma-separated stage specs, e.g. eo:0-5,dr:0-12:niss=during")
	solveCmd.Flags().IntVarP(&solveMax, "max", "n", 1, "number of solutions to print")
}

func runSolve(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(solveScramble)
	if err != nil {
		return fmt.Errorf("parsing scramble: %w", err)
	}
	stages, err := fmcparse.ParseSteps(solveSteps)
	if err != nil {
		return fmt.Errorf("parsing --steps: %w", err)
	}
	start := cube.FromAlg(moves)
	orch, err := solve.New(context.Background(), start, stages)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}
	printed := 0
	for sol := range orch.Solve() {
		fmt.Fprintln(cmd.OutOrStdout(), sol.String())
		printed++
		if printed >= solveMax {
			break
		}
	}
	if printed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution found within the configured stage budget")
	}
	return nil
}
