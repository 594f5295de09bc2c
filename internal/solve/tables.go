package solve

import (
	"context"

	"github.com/ehrlich-b/fmc-solver/internal/coords"
	"github.com/ehrlich-b/fmc-solver/internal/cube"
	"github.com/ehrlich-b/fmc-solver/internal/moveset"
	"github.com/ehrlich-b/fmc-solver/internal/prune"
)

// stageDescriptor bundles the move set, coordinate, and pruning table a
// stage's DFS needs — the "small tagged union of stage descriptors"
// dispatch shape the source material calls for, built once per stage
// kind and axis rather than re-derived per search call.
type stageDescriptor struct {
	moveSet moveset.MoveSet
	coord   coords.Coord
	table   *prune.Table
}

func axisFor(substeps []string) cube.Axis {
	for _, s := range substeps {
		switch s {
		case "fb", "finfb":
			return cube.AxisFB
		case "lr", "finlr":
			return cube.AxisLR
		}
	}
	return cube.AxisUD
}

// buildDescriptor constructs the stage descriptor for one stage
// configuration, building its pruning table by BFS from the subgroup's
// goal states.
func buildDescriptor(ctx context.Context, cfg StageConfig) (stageDescriptor, error) {
	axis := axisFor(cfg.Substeps)
	switch cfg.Kind {
	case EO:
		ms := moveset.EO()
		c := coords.EOAxis{Axis: axis}
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case RZP:
		ms := moveset.RZP()
		c := coords.DRComposite(axis)
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case DR:
		ms := moveset.DR()
		c := coords.DRComposite(axis)
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case HTR:
		ms := moveset.HTR()
		c := coords.ImpureHTRDRUD(axis)
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case FR:
		ms := moveset.FR()
		c := coords.FR(axis)
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case FRLeaveSlice:
		ms := moveset.FRLeaveSlice()
		c := coords.FRLeaveSlice(axis)
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	case FIN:
		ms := moveset.Finish()
		c := coords.Finish()
		table, err := prune.Build(ctx, c, ms, []cube.CubieCube{cube.NewSolved()})
		return stageDescriptor{moveSet: ms, coord: c, table: table}, err
	}
	return stageDescriptor{}, ErrConfigInvalid
}
