package solver

import (
	"github.com/cuzdav/akari/internal/model"
)

// ResetPolicy controls how from_board-style replay behaves when it hits an
// error partway through.
type ResetPolicy int

const (
	// StopOnError ceases playback once has_error becomes true.
	StopOnError ResetPolicy = iota
	// KeepErrors replays every fixture regardless of intermediate errors.
	KeepErrors
)

// SetCellPolicy controls how a general-purpose set_cell call behaves.
type SetCellPolicy int

const (
	// ReevaluateIfNecessary dispatches to the specific add/remove operation
	// when the transition is recognized, else falls through to a full
	// re-evaluation.
	ReevaluateIfNecessary SetCellPolicy = iota
	// NoReevaluateBoard writes the cell directly; the caller promises to
	// call ReevaluateBoardState itself once its batch of writes is done.
	NoReevaluateBoard
	// ForceReevaluateBoard always performs a full re-evaluation after the write.
	ForceReevaluateBoard
)

// PositionBoard wraps a BasicBoard with cached invariant counters: how many
// cells still need illumination, how many numbered walls remain unsatisfied,
// whether an error has been recorded, and (if so) why and where.
type PositionBoard struct {
	board model.BasicBoard

	numCellsNeedingIllumination int
	numWallsWithDeps             int
	hasError                     bool
	decisionType                 DecisionType
	refLocation                  model.OptCoord
}

// NewPositionBoard returns an empty height x width position: every cell
// Empty, counters derived from dimensions, no error.
func NewPositionBoard(height, width int) *PositionBoard {
	p := &PositionBoard{}
	p.board.Reset(height, width)
	p.numCellsNeedingIllumination = height * width
	return p
}

// FromBoard builds a fresh position by replaying the fixtures (walls, then
// bulbs and marks) found on board. Two-pass replay: walls first (so wall
// dependency counters are correct before any bulb placement tests
// satisfaction), then dynamic entities.
func FromBoard(board *model.BasicBoard, policy ResetPolicy) *PositionBoard {
	p := NewPositionBoard(board.Height(), board.Width())
	p.reset(board, policy)
	return p
}

func (p *PositionBoard) reset(current *model.BasicBoard, policy ResetPolicy) {
	p.board.Reset(current.Height(), current.Width())
	p.numCellsNeedingIllumination = current.Height() * current.Width()
	p.numWallsWithDeps = 0
	p.hasError = false
	p.decisionType = None
	p.refLocation = model.NoCoord

	// Pass 1: walls only.
	current.VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state.IsWall() {
			p.board.SetCell(coord, state)
			p.numCellsNeedingIllumination--
			if state.IsWallWithDeps() {
				p.numWallsWithDeps++
			}
			p.updateWall(coord, state, state, false)
		}
		return false
	})
	if p.hasError && policy == StopOnError {
		return
	}

	// Pass 2: bulbs and marks in row-major order, replayed through the real mutation ops so
	// illumination and error detection run exactly as live play would.
	current.VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if p.hasError && policy == StopOnError {
			return true
		}
		switch state {
		case model.Bulb:
			p.AddBulb(coord)
		case model.Mark:
			p.AddMark(coord)
		}
		return p.hasError && policy == StopOnError
	})
}

// ReevaluateBoardState recomputes every derived field from the current
// BasicBoard from scratch: a cheap correctness net after a batch of raw
// SetCell calls made under NoReevaluateBoard.
func (p *PositionBoard) ReevaluateBoardState(policy ResetPolicy) {
	boardCopy := p.board
	paranoid := NewPositionBoard(boardCopy.Height(), boardCopy.Width())
	paranoid.reset(&boardCopy, policy)
	p.numCellsNeedingIllumination = paranoid.numCellsNeedingIllumination
	p.numWallsWithDeps = paranoid.numWallsWithDeps
	p.hasError = paranoid.hasError
	p.decisionType = paranoid.decisionType
	p.refLocation = paranoid.refLocation
}

// Board returns the underlying BasicBoard, read-only by convention.
func (p *PositionBoard) Board() *model.BasicBoard { return &p.board }

// Height returns the board's row count.
func (p *PositionBoard) Height() int { return p.board.Height() }

// Width returns the board's column count.
func (p *PositionBoard) Width() int { return p.board.Width() }

// HasError reports whether the position currently holds a recorded error.
func (p *PositionBoard) HasError() bool { return p.hasError }

// Decision returns the reason for the current error or decision state.
func (p *PositionBoard) Decision() DecisionType { return p.decisionType }

// RefLocation returns the coordinate most responsible for the current state, if any.
func (p *PositionBoard) RefLocation() model.OptCoord { return p.refLocation }

// NumCellsNeedingIllumination returns the illumination ledger counter.
func (p *PositionBoard) NumCellsNeedingIllumination() int { return p.numCellsNeedingIllumination }

// NumWallsWithDeps returns the wall ledger counter.
func (p *PositionBoard) NumWallsWithDeps() int { return p.numWallsWithDeps }

// IsSolved reports whether the position satisfies every Akari constraint.
func (p *PositionBoard) IsSolved() bool {
	return !p.hasError && p.numWallsWithDeps == 0 && p.numCellsNeedingIllumination == 0
}

// IsAmbiguous reports whether the recorded decision is a uniqueness violation.
func (p *PositionBoard) IsAmbiguous() bool {
	return p.decisionType == ViolatesSingleUniqueSolution
}

// Clone returns a deep copy. PositionBoard is value-semantic (a fixed cell
// array plus a handful of scalars), so speculative "try a move, see what
// happens" logic just takes a copy on the call stack rather than pushing
// onto an explicit history object.
func (p *PositionBoard) Clone() *PositionBoard {
	np := *p
	return &np
}

func (p *PositionBoard) setError(reason DecisionType, ref model.OptCoord) {
	if p.hasError {
		return
	}
	p.hasError = true
	p.decisionType = reason
	p.refLocation = ref
}

// GetCell delegates to the underlying board.
func (p *PositionBoard) GetCell(coord model.Coord) model.CellState {
	return p.board.GetCell(coord)
}

// updateWall is the wall-update sub-protocol described in spec.md §4.3:
// count bulb and empty neighbours of wallCoord, decide whether it's
// satisfiable/over-satisfied, and (if playCell is a bulb adjacent to this
// wall) account for the wall's satisfaction transition. Returns whether the
// wall is currently satisfied.
func (p *PositionBoard) updateWall(wallCoord model.Coord, wallCell, playCell model.CellState, coordIsAdjacentToPlay bool) bool {
	if !wallCell.IsWallWithDeps() {
		return true
	}
	deps := wallCell.NumWallDeps()
	bulbNeighbors := 0
	emptyNeighbors := 0
	p.board.VisitAdjacent(wallCoord, func(_ model.Coord, state model.CellState) bool {
		switch {
		case state.IsBulb():
			bulbNeighbors++
		case state == model.Empty:
			emptyNeighbors++
		}
		return false
	})

	if bulbNeighbors > deps {
		p.setError(WallHasTooManyBulbs, model.Some(wallCoord))
		return false
	}
	if (deps - bulbNeighbors) > emptyNeighbors {
		p.setError(WallCannotBeSatisfied, model.Some(wallCoord))
		return false
	}
	satisfied := bulbNeighbors == deps
	if satisfied && coordIsAdjacentToPlay && playCell.IsBulb() {
		p.numWallsWithDeps--
	}
	return satisfied
}

// visitAdjacentWallsWithDeps re-runs updateWall for every numbered-wall
// neighbour of coord, used after a dynamic entity is placed/removed there.
func (p *PositionBoard) visitAdjacentWallsWithDeps(coord model.Coord, playCell model.CellState) {
	p.board.VisitAdjacent(coord, func(n model.Coord, state model.CellState) bool {
		if state.IsWallWithDeps() {
			p.updateWall(n, state, playCell, true)
		}
		return false
	})
}

// AddBulb places a bulb at coord. See spec.md §4.3 for the full protocol.
func (p *PositionBoard) AddBulb(coord model.Coord) bool {
	cur := p.GetCell(coord)
	if cur != model.Empty && cur != model.Illuminated {
		return false
	}
	p.board.SetCell(coord, model.Bulb)
	if cur == model.Empty {
		p.numCellsNeedingIllumination--
	}
	p.visitAdjacentWallsWithDeps(coord, model.Bulb)

	p.board.VisitRowsColsOutward(coord, func(n model.Coord, state model.CellState) bool {
		switch {
		case state.IsIlluminable():
			p.board.SetCell(n, model.Illuminated)
			p.numCellsNeedingIllumination--
			p.board.VisitAdjFlank(n, directionFromTo(coord, n), func(fn model.Coord, fs model.CellState) bool {
				if fs.IsWallWithDeps() {
					p.updateWall(fn, fs, model.Bulb, false)
				}
				return false
			})
		case state.IsBulb():
			p.setError(BulbsSeeEachOther, model.Some(coord))
			return true
		case state.IsWallWithDeps():
			p.updateWall(n, state, model.Bulb, false)
		}
		return false
	})
	return true
}

// AddMark places a mark at coord: an annotation meaning "no bulb here",
// which still occupies a face of any adjacent numbered wall.
func (p *PositionBoard) AddMark(coord model.Coord) bool {
	if p.GetCell(coord) != model.Empty {
		return false
	}
	p.board.SetCell(coord, model.Mark)
	p.visitAdjacentWallsWithDeps(coord, model.Mark)
	return true
}

// AddWall places a wall (numbered or Wall0) at coord. See spec.md §4.3.
func (p *PositionBoard) AddWall(coord model.Coord, wallState model.CellState) bool {
	cur := p.GetCell(coord)
	if cur == model.Illuminated && p.hasError {
		return false
	}
	if cur != model.Empty && cur != model.Illuminated {
		return false
	}
	wasIlluminated := cur == model.Illuminated
	p.board.SetCell(coord, wallState)
	if cur == model.Empty {
		p.numCellsNeedingIllumination--
	}

	if wallState.IsWallWithDeps() {
		p.numWallsWithDeps++
		if p.updateWall(coord, wallState, wallState, false) {
			p.numWallsWithDeps--
		}
	}

	p.visitAdjacentWallsWithDeps(coord, wallState)

	if wasIlluminated {
		// Light may have been blocked by this new wall. Find which
		// direction(s) previously carried light into coord, and re-cast on
		// the far side: recheck on the opposite side of each source.
		p.board.VisitRowsColsOutward(coord, func(n model.Coord, state model.CellState) bool {
			if state.IsBulb() {
				p.removeIllumInDirectionFrom(coord, directionFromTo(coord, n).Flip())
			}
			return false
		})
	}
	return true
}

// removeIllumInDirectionFrom walks outward from start in direction,
// reverting any Illuminated cell back to Empty unless a perpendicular
// crossbeam bulb still lights it, stopping at the first wall or
// non-Illuminated cell. Cells kept lit by a crossbeam do not end the walk.
func (p *PositionBoard) removeIllumInDirectionFrom(start model.Coord, direction model.Direction) {
	p.board.VisitRowsColsOutward(start, func(n model.Coord, state model.CellState) bool {
		if state != model.Illuminated {
			return true
		}
		hasCrossbeam := false
		perpendicular := []model.Direction{model.Up, model.Down}
		if direction.Vertical() {
			perpendicular = []model.Direction{model.Left, model.Right}
		}
		p.board.VisitRowsColsOutward(n, func(_ model.Coord, ps model.CellState) bool {
			if ps.IsBulb() {
				hasCrossbeam = true
				return true
			}
			return false
		}, perpendicular...)
		if !hasCrossbeam {
			p.board.SetCell(n, model.Empty)
			p.numCellsNeedingIllumination++
		}
		return false
	}, direction)
}

// RemoveBulb unwinds a bulb at coord. Deliberately implemented as
// set-to-Empty-then-full-replay: a correctness-over-minimal-work trade-off
// carried over unchanged from the original (spec.md §9 "Remove-bulb cost").
func (p *PositionBoard) RemoveBulb(coord model.Coord) bool {
	if !p.GetCell(coord).IsBulb() {
		return false
	}
	boardCopy := p.board
	boardCopy.SetCell(coord, model.Empty)
	p.reset(&boardCopy, KeepErrors)
	return true
}

// SetCell is the general-purpose setter described in spec.md §4.3.
func (p *PositionBoard) SetCell(coord model.Coord, state model.CellState, policy SetCellPolicy) bool {
	cur := p.GetCell(coord)
	if cur == state {
		return true
	}
	if policy == NoReevaluateBoard {
		return p.board.SetCell(coord, state)
	}

	var ok bool
	switch {
	case state.IsBulb():
		ok = p.AddBulb(coord)
	case state.IsMark():
		ok = p.AddMark(coord)
	case state.IsWall():
		ok = p.AddWall(coord, state)
	case state == model.Empty && cur.IsBulb():
		ok = p.RemoveBulb(coord)
	case state == model.Empty && cur.IsMark():
		p.board.SetCell(coord, model.Empty)
		ok = true
	default:
		ok = p.board.SetCell(coord, state)
	}

	if policy == ForceReevaluateBoard || !ok {
		p.ReevaluateBoardState(KeepErrors)
		ok = true
	}
	return ok
}

// ApplyMove dispatches an AnnotatedMove to the matching mutation operation.
func (p *PositionBoard) ApplyMove(move AnnotatedMove) bool {
	switch {
	case move.Action == Add && move.To.IsBulb():
		return p.AddBulb(move.Coord)
	case move.Action == Add && move.To.IsMark():
		return p.AddMark(move.Coord)
	case move.Action == Remove:
		return p.SetCell(move.Coord, model.Empty, ReevaluateIfNecessary)
	default:
		return false
	}
}

// directionFromTo returns the cardinal direction stepping from a to b,
// which must differ in exactly one of row or col.
func directionFromTo(a, b model.Coord) model.Direction {
	switch {
	case b.Row < a.Row:
		return model.Up
	case b.Row > a.Row:
		return model.Down
	case b.Col < a.Col:
		return model.Left
	case b.Col > a.Col:
		return model.Right
	default:
		return model.None
	}
}
