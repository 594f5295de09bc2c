package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fmc-solver/internal/cube"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger [name]",
	Short: "Look up a DR trigger by name, or list the catalog with no argument",
	RunE:  runTrigger,
}

func runTrigger(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		names := make([]string, 0, len(cube.TriggerSet))
		for name := range cube.TriggerSet {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			t := cube.TriggerSet[name]
			fmt.Fprintf(out, "%s: %s\n", t.Name, cube.RenderMoves(t.Moves))
		}
		return nil
	}
	t, ok := cube.LookupTrigger(args[0])
	if !ok {
		t, ok = cube.FuzzyLookupTrigger(args[0])
	}
	if !ok {
		fmt.Fprintf(out, "no trigger matching %q\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", t.Name, cube.RenderMoves(t.Moves))
	return nil
}
