package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

var (
	verifyScramble string
	verifySolution string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a proposed solution solves a scramble",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyScramble, "scramble", "s", "", "scramble move sequence")
	verifyCmd.Flags().StringVarP(&verifySolution, "solution", "o", "", "solution algorithm, e.g. \"R U (F) R'\"")
}

func runVerify(cmd *cobra.Command, args []string) error {
	scramble, err := cube.ParseMoves(verifyScramble)
	if err != nil {
		return fmt.Errorf("parsing scramble: %w", err)
	}
	alg, err := cube.ParseAlg(verifySolution)
	if err != nil {
		return fmt.Errorf("parsing solution: %w", err)
	}
	c := cube.FromAlg(scramble)
	c = alg.Apply(c)
	if c.IsSolved() {
		fmt.Fprintln(cmd.OutOrStdout(), "solved")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "not solved")
	return nil
}
