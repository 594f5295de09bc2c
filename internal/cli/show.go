package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

var showScramble string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the coordinate values of a scrambled cube",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showScramble, "scramble", "s", "", "move sequence to apply")
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(showScramble)
	if err != nil {
		return fmt.Errorf("parsing scramble: %w", err)
	}
	c := cube.FromAlg(moves)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "EO-UD:  %d / %d\n", coords.EOAxis{Axis: cube.AxisUD}.Encode(c), coords.EOAxis{}.Size())
	fmt.Fprintf(out, "CO-UD:  %d / %d\n", coords.COAxis{Axis: cube.AxisUD}.Encode(c), coords.COAxis{}.Size())
	fmt.Fprintf(out, "CP:     %d / %d\n", coords.CP{}.Encode(c), coords.CP{}.Size())
	fmt.Fprintf(out, "Slice-UD: %d / %d\n", coords.SliceUnsorted{Axis: cube.AxisUD}.Encode(c), coords.SliceUnsorted{}.Size())
	return nil
}
