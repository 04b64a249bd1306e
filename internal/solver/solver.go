package solver

import "github.com/cuzdav/akari/internal/model"

// Status is the outcome of a solve attempt.
type Status int

const (
	Initial Status = iota
	Progressing
	Solved
	Impossible
	Ambiguous
	Terminated
	FailedFindingMove
)

var statusNames = [...]string{
	Initial:           "Initial",
	Progressing:       "Progressing",
	Solved:            "Solved",
	Impossible:        "Impossible",
	Ambiguous:         "Ambiguous",
	Terminated:        "Terminated",
	FailedFindingMove: "FailedFindingMove",
}

func (s Status) String() string {
	if int(s) < 0 || int(s) >= len(statusNames) {
		return "Status(?)"
	}
	return statusNames[s]
}

// DefaultMaxSteps bounds the solver's main loop; exceeding it yields
// Terminated rather than running unbounded. Matches the step-bound-not-
// wall-clock cancellation policy of spec.md §5.
const DefaultMaxSteps = 10000

// Solution is the record spec.md §3 describes: final status, step and
// error counters, the position reached, and the ordered move history.
type Solution struct {
	Status     Status
	StepCount  int
	ErrorCount int
	Position   *PositionBoard
	Moves      []AnnotatedMove
}

// Solve is the solve() façade entry point: full-solve a board from scratch.
func Solve(board *model.BasicBoard) Solution {
	return SolveWithMaxSteps(board, DefaultMaxSteps)
}

// SolveWithMaxSteps is Solve with an explicit step bound, mainly for tests
// that want to exercise the Terminated path cheaply.
func SolveWithMaxSteps(board *model.BasicBoard, maxSteps int) Solution {
	position := FromBoard(board, KeepErrors)
	sol := Solution{Status: Initial, Position: position}

	var queue []AnnotatedMove

	for {
		if position.HasError() {
			sol.Status = Impossible
			sol.ErrorCount++
			return sol
		}
		if position.IsSolved() {
			sol.Status = Solved
			return sol
		}

		for len(queue) > 0 {
			move := queue[0]
			queue = queue[1:]
			if !position.ApplyMove(move) {
				continue
			}
			sol.Moves = append(sol.Moves, move)
			if position.HasError() {
				sol.Status = Impossible
				sol.ErrorCount++
				return sol
			}
		}

		var found []AnnotatedMove
		unilluminable := FindTrivialMoves(position.Board(), &found)
		if unilluminable.Valid {
			sol.Status = Impossible
			position.setError(MarkCannotBeIlluminated, unilluminable)
			sol.ErrorCount++
			return sol
		}
		queue = append(queue, found...)

		if len(queue) == 0 && !position.IsSolved() {
			specMoves, ambiguous := speculate(position)
			if len(specMoves) > 0 {
				queue = append(queue, specMoves...)
			} else if ambiguous {
				sol.Status = Ambiguous
				return sol
			} else {
				sol.Status = Terminated
				return sol
			}
		}

		sol.StepCount++
		if sol.StepCount > maxSteps {
			sol.Status = Terminated
			return sol
		}
		sol.Status = Progressing
	}
}

// speculate implements spec.md §4.5.1: one ply of speculation per currently
// empty cell. Trying a hypothetical bulb (or, symmetrically, a mark) and
// propagating trivial moves to fixpoint; a resulting error proves the
// opposite forced move in the real position. Returns the forced moves found,
// and whether at least one empty cell admits more than one consistent trial
// (i.e. evidence of ambiguity rather than unsolvability).
func speculate(position *PositionBoard) ([]AnnotatedMove, bool) {
	var forced []AnnotatedMove
	ambiguousSeen := false

	position.Board().VisitBoard(func(coord model.Coord, state model.CellState) bool {
		if state != model.Empty {
			return false
		}

		bulbErr, bulbReason := trialLeadsToError(position, coord, model.Bulb)
		markErr, markReason := trialLeadsToError(position, coord, model.Mark)

		switch {
		case bulbErr && markErr:
			// Both trials contradict: the underlying position itself is
			// unsolvable down this branch. Queue the bulb so the caller's
			// main loop applies it and reaches the same contradiction.
			forced = append(forced, NewAddMove(coord, model.Empty, model.Bulb, bulbReason, MotiveSpeculation, model.NoCoord))
		case bulbErr:
			forced = append(forced, NewAddMove(coord, model.Empty, model.Mark, bulbReason, MotiveSpeculation, model.NoCoord))
		case markErr:
			forced = append(forced, NewAddMove(coord, model.Empty, model.Bulb, markReason, MotiveSpeculation, model.NoCoord))
		default:
			ambiguousSeen = true
		}
		return false
	})
	return forced, ambiguousSeen
}

// trialLeadsToError copies position, applies the given hypothetical state at
// coord, propagates trivial moves to a fixpoint on the clone, and reports
// whether the clone ends in error along with that error's reason.
func trialLeadsToError(position *PositionBoard, coord model.Coord, trial model.CellState) (bool, DecisionType) {
	trialBoard := position.Clone()
	var ok bool
	if trial == model.Bulb {
		ok = trialBoard.AddBulb(coord)
	} else {
		ok = trialBoard.AddMark(coord)
	}
	if !ok {
		return false, None
	}
	if trialBoard.HasError() {
		return true, trialBoard.Decision()
	}

	queue := []AnnotatedMove{}
	for {
		var found []AnnotatedMove
		unilluminable := FindTrivialMoves(trialBoard.Board(), &found)
		if unilluminable.Valid {
			return true, MarkCannotBeIlluminated
		}
		queue = append(queue, found...)
		if len(queue) == 0 {
			return false, None
		}
		progressed := false
		for len(queue) > 0 {
			m := queue[0]
			queue = queue[1:]
			if trialBoard.ApplyMove(m) {
				progressed = true
			}
			if trialBoard.HasError() {
				return true, trialBoard.Decision()
			}
		}
		if !progressed {
			return false, None
		}
	}
}
