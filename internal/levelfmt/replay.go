package levelfmt

import (
	"fmt"
	"strings"

	"github.com/cuzdav/akari/internal/model"
)

// moveKind distinguishes a fixture-placement entry from the StartGame
// sentinel that separates level setup from player moves, mirroring the
// original BoardModel's move sequence.
type moveKind int

const (
	kindAdd moveKind = iota
	kindRemove
	kindStartGame
)

type historyEntry struct {
	kind  moveKind
	state model.CellState
	coord model.Coord
}

// History is an in-memory, append-only trace of how a board was built:
// fixture placements followed by a StartGame marker, then further moves.
// It exists purely for debugging a generated puzzle's construction, not for
// persistence — spec.md's non-goals exclude persistence formats, but not an
// in-process replay trace. Grounded on the original's BoardModel move list.
type History struct {
	height, width int
	entries       []historyEntry
}

// NewHistory begins a history for a board of the given dimensions.
func NewHistory(height, width int) *History {
	return &History{height: height, width: width}
}

// RecordAdd appends a fixture/entity placement.
func (h *History) RecordAdd(coord model.Coord, state model.CellState) {
	h.entries = append(h.entries, historyEntry{kind: kindAdd, state: state, coord: coord})
}

// RecordRemove appends a removal.
func (h *History) RecordRemove(coord model.Coord) {
	h.entries = append(h.entries, historyEntry{kind: kindRemove, coord: coord})
}

// RecordStartGame appends the sentinel separating setup from play.
func (h *History) RecordStartGame() {
	h.entries = append(h.entries, historyEntry{kind: kindStartGame})
}

// NumMoves returns how many entries have been recorded, including the
// StartGame sentinel if present.
func (h *History) NumMoves() int { return len(h.entries) }

// Trace renders the history as a human-readable construction log, one line
// per entry, after a header line with the board dimensions.
func (h *History) Trace() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "board %dx%d\n", h.height, h.width)
	for i, e := range h.entries {
		switch e.kind {
		case kindStartGame:
			fmt.Fprintf(&sb, "%3d: --- start game ---\n", i)
		case kindAdd:
			fmt.Fprintf(&sb, "%3d: add %v at %v\n", i, e.state, e.coord)
		case kindRemove:
			fmt.Fprintf(&sb, "%3d: remove at %v\n", i, e.coord)
		}
	}
	return sb.String()
}
