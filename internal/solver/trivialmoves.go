package solver

import "github.com/cuzdav/akari/internal/model"

// insertIfUnique appends move to moves unless some earlier move already
// targets the same coordinate; de-duplication matches spec.md §4.4's
// "a move at a given coord is suppressed if any earlier finder already
// emitted a move at that coord."
func insertIfUnique(moves *[]AnnotatedMove, move AnnotatedMove) {
	for _, m := range *moves {
		if m.Coord == move.Coord {
			return
		}
	}
	*moves = append(*moves, move)
}

func addBulbMove(moves *[]AnnotatedMove, coord model.Coord, from model.CellState, reason DecisionType, ref model.OptCoord) {
	insertIfUnique(moves, NewAddMove(coord, from, model.Bulb, reason, Forced, ref))
}

func addMarkMove(moves *[]AnnotatedMove, coord model.Coord, from model.CellState, reason DecisionType, motive Motive, ref model.OptCoord) {
	insertIfUnique(moves, NewAddMove(coord, from, model.Mark, reason, motive, ref))
}

// FindSatisfiedWallsHavingOpenFaces implements spec.md §4.4 rule 1: a
// numbered wall whose adjacent bulb count already equals its dependency,
// and that still has empty neighbours, forces every one of those neighbours
// to be a Mark.
func FindSatisfiedWallsHavingOpenFaces(board *model.BasicBoard, moves *[]AnnotatedMove) {
	board.VisitBoard(func(wallCoord model.Coord, wallCell model.CellState) bool {
		if !wallCell.IsWallWithDeps() {
			return false
		}
		deps := wallCell.NumWallDeps()
		bulbs := 0
		var empties []model.Coord
		board.VisitAdjacent(wallCoord, func(n model.Coord, s model.CellState) bool {
			if s.IsBulb() {
				bulbs++
			} else if s == model.Empty {
				empties = append(empties, n)
			}
			return false
		})
		if bulbs == deps && len(empties) > 0 {
			for _, e := range empties {
				addMarkMove(moves, e, model.Empty, WallSatisfiedHavingOpenFaces, Forced, model.Some(wallCoord))
			}
		}
		return false
	})
}

// FindWallsWithDepsEqualOpenFaces implements spec.md §4.4 rule 2: a numbered
// wall whose empty-neighbour count equals its remaining dependency forces
// every one of those neighbours to be a Bulb.
func FindWallsWithDepsEqualOpenFaces(board *model.BasicBoard, moves *[]AnnotatedMove) {
	board.VisitBoard(func(wallCoord model.Coord, wallCell model.CellState) bool {
		if !wallCell.IsWallWithDeps() {
			return false
		}
		deps := wallCell.NumWallDeps()
		bulbs := 0
		var empties []model.Coord
		board.VisitAdjacent(wallCoord, func(n model.Coord, s model.CellState) bool {
			if s.IsBulb() {
				bulbs++
			} else if s == model.Empty {
				empties = append(empties, n)
			}
			return false
		})
		remaining := deps - bulbs
		if remaining > 0 && len(empties) == remaining {
			for _, e := range empties {
				addBulbMove(moves, e, model.Empty, WallDepsEqualOpenFaces, model.Some(wallCoord))
			}
		}
		return false
	})
}

// cellConstrained reports whether placing a bulb at coord would be
// independently forced/blocked by a wall dependency or a perpendicular
// illuminable cell — i.e. it is NOT merely "any one of an equivalent run".
func cellConstrained(board *model.BasicBoard, coord model.Coord, axis model.Direction) bool {
	constrained := false
	board.VisitAdjacent(coord, func(_ model.Coord, s model.CellState) bool {
		if s.IsWallWithDeps() {
			constrained = true
			return true
		}
		return false
	})
	if constrained {
		return true
	}
	board.VisitPerpendicular(coord, axis, func(_ model.Coord, s model.CellState) bool {
		if s.IsIlluminable() {
			constrained = true
			return true
		}
		return false
	})
	return constrained
}

// findAmbiguousRuns implements spec.md §4.4 rule 3 along one axis (rows when
// axis=Right, columns when axis=Down): walk maximal runs of Empty cells
// bounded by walls or the board edge. In a run longer than one cell where
// every cell is unconstrained (no adjacent wall-with-deps, no perpendicular
// illuminable cell), a bulb on any one of them would light the whole run —
// multiple solutions — so every cell of the run is marked. A run containing
// at least one constrained cell is left alone.
func findAmbiguousRuns(board *model.BasicBoard, moves *[]AnnotatedMove, axis model.Direction, lineLen int, cellAt func(i int) model.Coord) {
	i := 0
	for i < lineLen {
		coord := cellAt(i)
		if board.GetCell(coord) != model.Empty {
			i++
			continue
		}
		var run []model.Coord
		for i < lineLen {
			c := cellAt(i)
			if board.GetCell(c) != model.Empty {
				break
			}
			run = append(run, c)
			i++
		}
		if len(run) > 1 {
			unconstrained := true
			for _, c := range run {
				if cellConstrained(board, c, axis) {
					unconstrained = false
					break
				}
			}
			if unconstrained {
				for _, c := range run {
					addMarkMove(moves, c, model.Empty, ViolatesSingleUniqueSolution, Followup, model.Some(run[0]))
				}
			}
		}
	}
}

// FindAmbiguousLinearAlignedRowCells runs the row-sweep variant of rule 3.
// The perpendicular axis checked by cellConstrained must be vertical (Up/Down),
// so it passes Right (a horizontal direction) to VisitPerpendicular.
func FindAmbiguousLinearAlignedRowCells(board *model.BasicBoard, moves *[]AnnotatedMove) {
	for r := 0; r < board.Height(); r++ {
		row := r
		findAmbiguousRuns(board, moves, model.Right, board.Width(), func(i int) model.Coord {
			return model.Coord{Row: int8(row), Col: int8(i)}
		})
	}
}

// FindAmbiguousLinearAlignedColCells runs the column-sweep variant of rule 3.
// The perpendicular axis checked by cellConstrained must be horizontal
// (Left/Right), so it passes Down (a vertical direction) to VisitPerpendicular.
func FindAmbiguousLinearAlignedColCells(board *model.BasicBoard, moves *[]AnnotatedMove) {
	for c := 0; c < board.Width(); c++ {
		col := c
		findAmbiguousRuns(board, moves, model.Down, board.Height(), func(i int) model.Coord {
			return model.Coord{Row: int8(i), Col: int8(col)}
		})
	}
}

// FindIsolatedCells implements spec.md §4.4 rule 4. Returns the coordinate
// of a Mark that cannot possibly be illuminated (zero visible empties and
// it is itself unlit), if one is found.
func FindIsolatedCells(board *model.BasicBoard, moves *[]AnnotatedMove) model.OptCoord {
	var unilluminable model.OptCoord
	board.VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state != model.Empty && state != model.Mark {
			return false
		}
		emptyCoords := countVisibleEmpties(board, coord)
		switch state {
		case model.Empty:
			if len(emptyCoords) == 0 {
				addBulbMove(moves, coord, model.Empty, IsolatedEmptySquare, model.NoCoord)
			}
		case model.Mark:
			switch len(emptyCoords) {
			case 1:
				addBulbMove(moves, emptyCoords[0], model.Empty, IsolatedMark, model.Some(coord))
			case 0:
				if !unilluminable.Valid {
					unilluminable = model.Some(coord)
				}
			}
		}
		return false
	})
	return unilluminable
}

func countVisibleEmpties(board *model.BasicBoard, coord model.Coord) []model.Coord {
	var empties []model.Coord
	board.VisitRowsColsOutward(coord, func(n model.Coord, s model.CellState) bool {
		if s == model.Empty {
			empties = append(empties, n)
		}
		return false
	})
	return empties
}

// FindTrivialMoves runs the full sweep in the order spec.md §4.4 mandates
// (satisfied walls, deps-equal-open-faces, row-ambiguous, col-ambiguous,
// isolated cells) and returns the isolated-cells result, same as the
// aggregate function in the original.
func FindTrivialMoves(board *model.BasicBoard, moves *[]AnnotatedMove) model.OptCoord {
	FindSatisfiedWallsHavingOpenFaces(board, moves)
	FindWallsWithDepsEqualOpenFaces(board, moves)
	FindAmbiguousLinearAlignedRowCells(board, moves)
	FindAmbiguousLinearAlignedColCells(board, moves)
	return FindIsolatedCells(board, moves)
}
