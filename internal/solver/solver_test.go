package solver

import (
	"testing"

	"github.com/cuzdav/akari/internal/levelfmt"
)

func TestSolveConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   string
		status Status
	}{
		{
			name: "ring around four-wall",
			input: "0.0\n" +
				".4.\n" +
				"0.0",
			want: "0*0\n" +
				"*4*\n" +
				"0*0",
			status: Solved,
		},
		{
			name: "two walls open field",
			input:  "1...\n..2.",
			want:   "1+*+\n*+2*",
			status: Solved,
		},
		{
			name: "larger mixed board",
			input: ".2..\n" +
				"....\n" +
				"0.2.\n" +
				"..0.",
			want: "*2*+\n" +
				"++++\n" +
				"0*2*\n" +
				"*+0+",
			status: Solved,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board, err := levelfmt.ParseASCIIString(tc.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			sol := Solve(board)
			if sol.Status != tc.status {
				t.Fatalf("status = %v, want %v", sol.Status, tc.status)
			}
			got := levelfmt.FormatASCII(sol.Position.Board())
			if got != tc.want {
				t.Fatalf("solved board =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestSolveMarksWithNoEmptyNeighboursIsImpossible(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("XX\nXX")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := Solve(board)
	if sol.Status != Impossible {
		t.Fatalf("status = %v, want Impossible", sol.Status)
	}
	if sol.Position.Decision() != MarkCannotBeIlluminated {
		t.Fatalf("decision = %v, want MarkCannotBeIlluminated", sol.Position.Decision())
	}
}

func TestSolveAmbiguousTwoByTwoEmpty(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("..\n..")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := Solve(board)
	if sol.Status != Ambiguous && sol.Status != Impossible {
		t.Fatalf("status = %v, want Ambiguous (or Impossible via ViolatesSingleUniqueSolution)", sol.Status)
	}
}

func TestEmbeddedBulbsSeeEachOther(t *testing.T) {
	board, err := levelfmt.ParseASCIIString("*.*")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	position := FromBoard(board, KeepErrors)
	if !position.HasError() {
		t.Fatal("expected has_error true for two unobstructed bulbs")
	}
	if position.Decision() != BulbsSeeEachOther {
		t.Fatalf("decision = %v, want BulbsSeeEachOther", position.Decision())
	}
}

func TestSolverDeterminism(t *testing.T) {
	input := ".2..\n....\n0.2.\n..0."
	board1, _ := levelfmt.ParseASCIIString(input)
	board2, _ := levelfmt.ParseASCIIString(input)
	sol1 := Solve(board1)
	sol2 := Solve(board2)
	if sol1.Status != sol2.Status {
		t.Fatalf("nondeterministic status: %v vs %v", sol1.Status, sol2.Status)
	}
	got1 := levelfmt.FormatASCII(sol1.Position.Board())
	got2 := levelfmt.FormatASCII(sol2.Position.Board())
	if got1 != got2 {
		t.Fatalf("nondeterministic result:\n%s\nvs\n%s", got1, got2)
	}
}
