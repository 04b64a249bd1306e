package solver

import "github.com/cuzdav/akari/internal/model"

// maxClusterSize bounds how many co-motivated moves the hint engine groups
// into a single explanation step.
const maxClusterSize = 4

// ExplainStep is a small cluster of moves sharing the same reason and
// reference coordinate — one "beat" in an explanation.
type ExplainStep struct {
	Moves []AnnotatedMove
}

func (e *ExplainStep) add(m AnnotatedMove) bool {
	if len(e.Moves) >= maxClusterSize {
		return false
	}
	e.Moves = append(e.Moves, m)
	return true
}

// Hint is the record spec.md §3 describes: the reason for the position's
// current state, the next move cluster to suggest, and (when the next move
// was proved by contradiction) the ordered walk of clusters leading there.
type Hint struct {
	Reason       DecisionType
	NextStep     ExplainStep
	ExplainSteps []ExplainStep
}

// Empty reports whether the hint carries no next step (solved, or no
// trivial move was found).
func (h Hint) Empty() bool { return len(h.NextStep.Moves) == 0 }

// clusterFront pulls leading entries off queue that share reason and ref
// with the first entry, up to maxClusterSize, returning the cluster and the
// remaining queue.
func clusterFront(queue []AnnotatedMove) (ExplainStep, []AnnotatedMove) {
	var step ExplainStep
	if len(queue) == 0 {
		return step, queue
	}
	first := queue[0]
	i := 0
	for i < len(queue) {
		m := queue[i]
		if m.Reason != first.Reason || m.RefCoord != first.RefCoord {
			break
		}
		if !step.add(m) {
			break
		}
		i++
	}
	return step, queue[i:]
}

// Create builds a Hint for board, per spec.md §4.6.
func Create(board *model.BasicBoard) Hint {
	position := FromBoard(board, KeepErrors)
	if position.HasError() {
		return Hint{Reason: position.Decision()}
	}

	var queue []AnnotatedMove
	unilluminable := FindTrivialMoves(position.Board(), &queue)
	if unilluminable.Valid {
		return Hint{Reason: MarkCannotBeIlluminated, NextStep: ExplainStep{Moves: []AnnotatedMove{
			NewAddMove(unilluminable.Coord, model.Mark, model.Mark, MarkCannotBeIlluminated, Forced, unilluminable),
		}}}
	}
	if len(queue) == 0 {
		specMoves, _ := speculate(position)
		queue = specMoves
		if len(queue) == 0 {
			return Hint{}
		}
	}

	nextStep, _ := clusterFront(queue)
	hint := Hint{Reason: nextStep.Moves[0].Reason, NextStep: nextStep}

	if nextStep.Moves[0].Motive != MotiveSpeculation {
		return hint
	}

	// The move was discovered by contradiction: explain it by flipping the
	// proposed state to its opposite and replaying trivial propagation
	// until the flip provably collides, clustering each propagation step by
	// reference coordinate as we go. This mirrors Hint.cpp's flip-and-
	// explain loop exactly.
	flipped := nextStep.Moves[0]
	flipped.To = flipToOpposite(flipped.To)

	explain := position.Clone()
	applyQueue := []AnnotatedMove{flipped}

	for !explain.HasError() {
		progressed := false
		for len(applyQueue) > 0 {
			m := applyQueue[0]
			applyQueue = applyQueue[1:]
			if explain.ApplyMove(m) {
				progressed = true
			}
			if explain.HasError() {
				break
			}
		}
		if explain.HasError() {
			break
		}

		var found []AnnotatedMove
		unilluminable := FindTrivialMoves(explain.Board(), &found)
		if unilluminable.Valid {
			hint.ExplainSteps = append(hint.ExplainSteps, ExplainStep{Moves: []AnnotatedMove{
				NewAddMove(unilluminable.Coord, model.Mark, model.Mark, MarkCannotBeIlluminated, Forced, unilluminable),
			}})
			break
		}
		if len(found) == 0 {
			break
		}
		var step ExplainStep
		step, found = clusterFront(found)
		hint.ExplainSteps = append(hint.ExplainSteps, step)
		applyQueue = found
		if !progressed && len(applyQueue) == 0 {
			break
		}
	}

	return hint
}

func flipToOpposite(state model.CellState) model.CellState {
	if state.IsBulb() {
		return model.Mark
	}
	return model.Bulb
}
