// Package generator builds solvable, uniquely-solvable Akari boards by
// fixture placement plus using the solver as an oracle, per spec.md §4.7.
package generator

import (
	"fmt"

	"github.com/cuzdav/akari/internal/levelfmt"
	"github.com/cuzdav/akari/internal/model"
	"github.com/cuzdav/akari/internal/rng"
	"github.com/cuzdav/akari/internal/solver"
)

// SymmetryMode controls how wall sprinkling mirrors itself across the
// board, for aesthetic symmetry. Grounded on the original's
// levels/BasicWallLayout(2).cpp point-reflection placement, reinstated here
// since spec.md §4.7 step 2 mentions it only in passing.
type SymmetryMode int

const (
	NoSymmetry SymmetryMode = iota
	Point180
	MirrorHorizontal
)

// Options configures a single generation attempt.
type Options struct {
	Height         int
	Width          int
	WallDensityMin float64 // fraction of cells sprinkled with Wall0, lower bound
	WallDensityMax float64 // upper bound
	Symmetry       SymmetryMode
	MaxIterations  int
	Trace          *levelfmt.History // optional; records fixture placements
}

// DefaultOptions returns sane defaults: 2%-5% wall density, no symmetry,
// bounded repair iterations, matching spec.md §4.7 step 2's stated range.
func DefaultOptions(height, width int) Options {
	return Options{
		Height:         height,
		Width:          width,
		WallDensityMin: 0.02,
		WallDensityMax: 0.05,
		Symmetry:       NoSymmetry,
		MaxIterations:  200,
	}
}

// ErrExhausted is returned when generation could not converge within
// MaxIterations repair attempts.
type ErrExhausted struct {
	Iterations int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("generator: exhausted %d iterations without a solvable-unique board", e.Iterations)
}

// Generate builds a puzzle per spec.md §4.7: sprinkle walls, place bulbs to
// a fully-lit "desired final" position, try to solve from bulb-only state,
// and on failure apply targeted repairs and retry, bounded by
// opts.MaxIterations.
func Generate(source rng.Source, opts Options) (*model.BasicBoard, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 200
	}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		position := solver.NewPositionBoard(opts.Height, opts.Width)
		sprinkleWalls(source, position, opts)

		bulbCoords := placeDesiredBulbs(source, position)
		if opts.Trace != nil {
			for _, c := range bulbCoords {
				opts.Trace.RecordAdd(c, model.Bulb)
			}
		}

		bulbOnly := extractBulbsAndWalls(position, bulbCoords)
		sol := solver.Solve(bulbOnly)

		switch sol.Status {
		case solver.Solved:
			clean := extractWallsOnly(position)
			annotateWallDependencies(clean, bulbCoords)
			if opts.Trace != nil {
				opts.Trace.RecordStartGame()
			}
			return clean, nil
		default:
			if !applyRepair(position, sol) {
				continue
			}
		}
	}
	return nil, &ErrExhausted{Iterations: opts.MaxIterations}
}

// sprinkleWalls places a small random count of Wall0s into empty cells,
// optionally mirroring placement for symmetry.
func sprinkleWalls(source rng.Source, position *solver.PositionBoard, opts Options) {
	total := opts.Height * opts.Width
	density := opts.WallDensityMin
	if opts.WallDensityMax > opts.WallDensityMin {
		span := opts.WallDensityMax - opts.WallDensityMin
		density += span * (float64(source.Intn(1000)) / 1000.0)
	}
	count := int(float64(total) * density)
	if count < 1 {
		count = 1
	}

	placed := 0
	attempts := 0
	for placed < count && attempts < count*20 {
		attempts++
		coord := randomEmptyCoord(source, position)
		if !coord.Valid {
			break
		}
		if !position.AddWall(coord.Coord, model.Wall0) {
			continue
		}
		placed++
		if opts.Symmetry != NoSymmetry {
			mirror := mirrorCoord(coord.Coord, opts.Height, opts.Width, opts.Symmetry)
			if mirror != coord.Coord && position.GetCell(mirror) == model.Empty {
				if position.AddWall(mirror, model.Wall0) {
					placed++
				}
			}
		}
	}
}

func mirrorCoord(c model.Coord, height, width int, mode SymmetryMode) model.Coord {
	switch mode {
	case Point180:
		return model.Coord{Row: int8(height-1) - c.Row, Col: int8(width-1) - c.Col}
	case MirrorHorizontal:
		return model.Coord{Row: c.Row, Col: int8(width-1) - c.Col}
	default:
		return c
	}
}

func randomEmptyCoord(source rng.Source, position *solver.PositionBoard) model.OptCoord {
	var candidates []model.Coord
	position.Board().VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state == model.Empty {
			candidates = append(candidates, coord)
		}
		return false
	})
	if len(candidates) == 0 {
		return model.NoCoord
	}
	return model.Some(candidates[source.Intn(len(candidates))])
}

// placeDesiredBulbs greedily places bulbs into empty cells, preferring cells
// that are still unlit, until every illuminable cell is covered. This is
// the "desired final" solution the generator wants the finished puzzle to
// admit.
func placeDesiredBulbs(source rng.Source, position *solver.PositionBoard) []model.Coord {
	var bulbs []model.Coord
	for position.NumCellsNeedingIllumination() > 0 {
		coord := randomEmptyCoord(source, position)
		if !coord.Valid {
			break
		}
		if position.AddBulb(coord.Coord) {
			bulbs = append(bulbs, coord.Coord)
		} else {
			// randomEmptyCoord only returns Empty cells, which AddBulb always
			// accepts, so this branch is not reached in practice; the break
			// stops the loop instead of reselecting a rejected cell forever.
			break
		}
	}
	return bulbs
}

// extractBulbsAndWalls builds a fresh BasicBoard holding only the walls
// from position plus the bulbs placed during generation, with every other
// cell Empty — the "bulb-only" board the solver oracle attempts to re-derive
// from scratch.
func extractBulbsAndWalls(position *solver.PositionBoard, bulbs []model.Coord) *model.BasicBoard {
	board := model.NewBasicBoard(position.Height(), position.Width())
	position.Board().VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state.IsWall() {
			board.SetCell(coord, state)
		}
		return false
	})
	for _, c := range bulbs {
		board.SetCell(c, model.Bulb)
	}
	return board
}

// extractWallsOnly builds a clean board holding just the walls of position,
// the shape of the puzzle a player is actually handed.
func extractWallsOnly(position *solver.PositionBoard) *model.BasicBoard {
	board := model.NewBasicBoard(position.Height(), position.Width())
	position.Board().VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state.IsWall() {
			board.SetCell(coord, state)
		}
		return false
	})
	return board
}

// annotateWallDependencies stamps each Wall0 in board with the actual
// bulb-adjacency count implied by bulbs, turning undifferentiated Wall0
// placeholders into the puzzle's real numbered walls. Spec.md §4.7 step 4
// folds this into "extract walls... annotate walls with bulb-neighbour
// counts"; kept here as its own function so it is independently testable,
// per the original's separate post-pass in BasicWallLayout.cpp.
func annotateWallDependencies(board *model.BasicBoard, bulbs []model.Coord) {
	bulbSet := make(map[model.Coord]bool, len(bulbs))
	for _, c := range bulbs {
		bulbSet[c] = true
	}
	board.VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if !state.IsWall() {
			return false
		}
		count := 0
		board.VisitAdjacent(coord, func(n model.Coord, _ model.CellState) bool {
			if bulbSet[n] {
				count++
			}
			return false
		})
		board.SetCell(coord, model.WallWithDeps(count))
		return false
	})
}

// applyRepair implements spec.md §4.7 step 5's targeted corrections. It
// mutates position in place and reports whether a repair was applied (a
// false return means this attempt cannot be salvaged and a fresh attempt
// should start).
func applyRepair(position *solver.PositionBoard, sol solver.Solution) bool {
	ref := sol.Position.RefLocation()
	switch sol.Position.Decision() {
	case solver.WallCannotBeSatisfied:
		if !ref.Valid {
			return false
		}
		cur := position.GetCell(ref.Coord)
		if !cur.IsWallWithDeps() {
			return false
		}
		position.Board().SetCell(ref.Coord, model.RemoveWallDep(cur))
		position.ReevaluateBoardState(solver.KeepErrors)
		return true
	case solver.WallHasTooManyBulbs:
		if !ref.Valid {
			return false
		}
		cur := position.GetCell(ref.Coord)
		if !cur.IsWall() || cur == model.Wall4 {
			return false
		}
		position.Board().SetCell(ref.Coord, model.AddWallDep(cur))
		position.ReevaluateBoardState(solver.KeepErrors)
		return true
	case solver.MarkCannotBeIlluminated:
		if !ref.Valid {
			return false
		}
		// Promote a stray empty neighbour to a wall as a last resort, or
		// failing that add a dependency to an adjacent wall to force a
		// bulb into the mark's reach.
		promoted := false
		position.Board().VisitAdjacent(ref.Coord, func(n model.Coord, s model.CellState) bool {
			if s == model.Empty {
				position.Board().SetCell(n, model.Wall0)
				promoted = true
				return true
			}
			return false
		})
		if !promoted {
			position.Board().VisitAdjacent(ref.Coord, func(n model.Coord, s model.CellState) bool {
				if s.IsWallWithDeps() && s != model.Wall4 {
					position.Board().SetCell(n, model.AddWallDep(s))
					promoted = true
					return true
				}
				return false
			})
		}
		if promoted {
			position.ReevaluateBoardState(solver.KeepErrors)
		}
		return promoted
	case solver.ViolatesSingleUniqueSolution:
		if !ref.Valid {
			return false
		}
		forced := false
		position.Board().VisitAdjacent(ref.Coord, func(n model.Coord, s model.CellState) bool {
			if s.IsWallWithDeps() && s != model.Wall4 {
				position.Board().SetCell(n, model.AddWallDep(s))
				forced = true
				return true
			}
			return false
		})
		if forced {
			position.ReevaluateBoardState(solver.KeepErrors)
		}
		return forced
	default:
		return false
	}
}
