package solver

import (
	"fmt"

	"github.com/cuzdav/akari/internal/model"
)

// Action is the kind of mutation an AnnotatedMove performs.
type Action int

const (
	// Add places a dynamic entity (bulb or mark) onto an empty/illuminated cell.
	Add Action = iota
	// Remove takes a dynamic entity back off, restoring Empty/Illuminated.
	Remove
)

func (a Action) String() string {
	if a == Add {
		return "Add"
	}
	return "Remove"
}

// Motive records why a move was generated.
type Motive int

const (
	// Forced means the trivial-move finders proved this move is the only
	// logically consistent choice.
	Forced Motive = iota
	// Followup means the move was produced as a side effect of another
	// move's propagation (e.g. marking the rest of an ambiguous run).
	Followup
	// MotiveSpeculation means the move was proved by one-ply speculative trial.
	MotiveSpeculation
)

func (m Motive) String() string {
	switch m {
	case Forced:
		return "Forced"
	case Followup:
		return "Followup"
	default:
		return "Speculation"
	}
}

// AnnotatedMove is a single proposed or applied mutation, with the
// provenance needed to explain it to a player.
type AnnotatedMove struct {
	Action    Action
	From      model.CellState
	To        model.CellState
	Coord     model.Coord
	Reason    DecisionType
	Motive    Motive
	RefCoord  model.OptCoord
}

// NewAddMove builds an Add move placing `to` at coord, coming from `from`.
func NewAddMove(coord model.Coord, from, to model.CellState, reason DecisionType, motive Motive, ref model.OptCoord) AnnotatedMove {
	return AnnotatedMove{Action: Add, From: from, To: to, Coord: coord, Reason: reason, Motive: motive, RefCoord: ref}
}

// NewRemoveMove builds a Remove move taking `from` back to Empty at coord.
func NewRemoveMove(coord model.Coord, from model.CellState, reason DecisionType, motive Motive, ref model.OptCoord) AnnotatedMove {
	return AnnotatedMove{Action: Remove, From: from, To: model.Empty, Coord: coord, Reason: reason, Motive: motive, RefCoord: ref}
}

// String implements fmt.Stringer.
func (m AnnotatedMove) String() string {
	return fmt.Sprintf("%s %v->%v @%v (%v/%v)", m.Action, m.From, m.To, m.Coord, m.Reason, m.Motive)
}
