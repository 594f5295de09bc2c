package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

var twistScramble string

var twistCmd = &cobra.Command{
	Use:   "twist",
	Short: "Apply a move sequence to a solved cube and print the resulting cubie state",
	RunE:  runTwist,
}

func init() {
	twistCmd.Flags().StringVarP(&twistScramble, "scramble", "s", "", "move sequence to apply")
}

func runTwist(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(twistScramble)
	if err != nil {
		return fmt.Errorf("parsing scramble: %w", err)
	}
	c := cube.FromAlg(moves)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "solved: %v\n", c.IsSolved())
	fmt.Fprintf(out, "corners: %v\n", c.Corners)
	fmt.Fprintf(out, "edges: %v\n", c.Edges)
	return nil
}
