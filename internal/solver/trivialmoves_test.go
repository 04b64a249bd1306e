package solver

import (
	"testing"

	"github.com/cuzdav/akari/internal/levelfmt"
	"github.com/cuzdav/akari/internal/model"
)

func TestFindSatisfiedWallsHavingOpenFaces(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("*1.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindSatisfiedWallsHavingOpenFaces(board, &moves)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d: %v", len(moves), moves)
	}
	if moves[0].To != model.Mark {
		t.Fatalf("expected forced Mark, got %v", moves[0].To)
	}
}

func TestFindWallsWithDepsEqualOpenFaces(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("2.\n..")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindWallsWithDepsEqualOpenFaces(board, &moves)
	found := false
	for _, m := range moves {
		if m.To == model.Bulb {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one forced Bulb move, got %v", moves)
	}
}

func TestFindIsolatedEmptySquare(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("000\n0.0\n000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	unillum := FindIsolatedCells(board, &moves)
	if unillum.Valid {
		t.Fatalf("did not expect an unilluminable mark")
	}
	foundBulb := false
	for _, m := range moves {
		if m.To == model.Bulb && m.Reason == IsolatedEmptySquare {
			foundBulb = true
		}
	}
	if !foundBulb {
		t.Fatalf("expected isolated-empty forced bulb move, got %v", moves)
	}
}

func TestFindIsolatedMarkUnilluminable(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("0X0\n000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	unillum := FindIsolatedCells(board, &moves)
	if !unillum.Valid {
		t.Fatal("expected an unilluminable mark to be reported")
	}
}

func TestFindAmbiguousLinearAlignedRowCells(t *testing.T) {
	// Row 1 is a run of three empties. (1,0) and (1,1) sit between Wall0 cells,
	// but (1,2) has the illuminable (0,2) above it, so the run is constrained
	// and is not ambiguous: nothing in it is marked.
	board, err := levelfmt.ParseASCIIString("00.\n...\n00.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindAmbiguousLinearAlignedRowCells(board, &moves)

	want := map[model.Coord]bool{}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d: %v", len(want), len(moves), moves)
	}
	for _, m := range moves {
		if !want[m.Coord] {
			t.Fatalf("unexpected move at %v: %v", m.Coord, moves)
		}
		if m.To != model.Mark || m.Reason != ViolatesSingleUniqueSolution {
			t.Fatalf("move at %v = %+v, want a ViolatesSingleUniqueSolution Mark", m.Coord, m)
		}
	}
}

func TestFindAmbiguousLinearAlignedColCells(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("00.\n...\n00.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindAmbiguousLinearAlignedColCells(board, &moves)

	// Column 2 is a run of three empties; (1,2) has the illuminable (1,1)
	// beside it, so the run is constrained and nothing in it is marked.
	want := map[model.Coord]bool{}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d: %v", len(want), len(moves), moves)
	}
	for _, m := range moves {
		if !want[m.Coord] {
			t.Fatalf("unexpected move at %v: %v", m.Coord, moves)
		}
	}
}

func TestFindAmbiguousRunsLeavesConstrainedCellUnmarked(t *testing.T) {
	// (1,2) sits at the intersection of the row-1 run and the column-2 run;
	// it has an illuminable perpendicular neighbour on both axes, so neither
	// sweep may mark it.
	board, err := levelfmt.ParseASCIIString("00.\n...\n00.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindAmbiguousLinearAlignedRowCells(board, &moves)
	FindAmbiguousLinearAlignedColCells(board, &moves)

	for _, m := range moves {
		if m.Coord == (model.Coord{Row: 1, Col: 2}) {
			t.Fatalf("(1,2) is constrained and must not be marked, got %v", moves)
		}
	}
}

func TestDeduplicationAcrossFinders(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("*1.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var moves []AnnotatedMove
	FindTrivialMoves(board, &moves)
	seen := map[model.Coord]bool{}
	for _, m := range moves {
		if seen[m.Coord] {
			t.Fatalf("duplicate move at %v: %v", m.Coord, moves)
		}
		seen[m.Coord] = true
	}
}
