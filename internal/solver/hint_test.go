package solver

import (
	"testing"

	"github.com/cuzdav/akari/internal/levelfmt"
)

func TestHintOnSolvedBoardIsEmpty(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("0*0\n*4*\n0*0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	hint := Create(board)
	if !hint.Empty() {
		t.Fatalf("expected no hint for an already-solved board, got %v", hint.NextStep)
	}
}

func TestHintForcedWallMove(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("*1.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	hint := Create(board)
	if hint.Empty() {
		t.Fatal("expected a forced move hint")
	}
	if hint.Reason != WallSatisfiedHavingOpenFaces {
		t.Fatalf("reason = %v, want WallSatisfiedHavingOpenFaces", hint.Reason)
	}
}

func TestHintOnErroredPositionReportsError(t *testing.T) {
	// A position with an error already set produces a Hint whose Reason is
	// the error's own decision type, with no next step.
	board, err := levelfmt.ParseASCIIString("*.*")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	hint := Create(board)
	if hint.Reason != BulbsSeeEachOther {
		t.Fatalf("reason = %v, want BulbsSeeEachOther", hint.Reason)
	}
	if !hint.Empty() {
		t.Fatalf("expected no next step once the position already holds an error")
	}
}
