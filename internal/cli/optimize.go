package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

var optimizeInput string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Collapse a move sequence's redundant same-face turns",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeInput, "moves", "m", "", "move sequence to optimize")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(optimizeInput)
	if err != nil {
		return fmt.Errorf("parsing moves: %w", err)
	}
	optimized := cube.OptimizeMoves(moves)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  (%d -> %d moves)\n", cube.RenderMoves(optimized), len(moves), len(optimized))
	return nil
}
