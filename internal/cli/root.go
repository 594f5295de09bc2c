// Package cli wires the cobra command tree exposed by cmd/cube.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A Fewest-Moves-Count solver for the 3x3x3 Rubik's cube",
	Long:  "cube finds short move sequences that solve a scrambled 3x3x3 Rubik's cube, following the DR-method pipeline (EO -> DR -> HTR -> FR -> Finish).",
}

// Execute runs the command tree; cmd/cube's main calls this directly.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(triggerCmd)
	rootCmd.AddCommand(optimizeCmd)
}
