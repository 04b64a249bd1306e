package model

import "testing"

func TestResetAndGetSetCell(t *testing.T) {
	b := NewBasicBoard(3, 4)
	if b.Height() != 3 || b.Width() != 4 {
		t.Fatalf("unexpected dims %d x %d", b.Height(), b.Width())
	}
	coord := Coord{Row: 1, Col: 2}
	if got := b.GetCell(coord); got != Empty {
		t.Fatalf("fresh cell = %v, want Empty", got)
	}
	b.SetCell(coord, Bulb)
	if got := b.GetCell(coord); got != Bulb {
		t.Fatalf("after SetCell = %v, want Bulb", got)
	}
}

func TestResetOverCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for over-capacity dimensions")
		}
	}()
	NewBasicBoard(30, 30)
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	b := NewBasicBoard(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range coord")
		}
	}()
	b.GetCell(Coord{Row: 5, Col: 5})
}

func TestVisitAdjacent(t *testing.T) {
	b := NewBasicBoard(3, 3)
	b.SetCell(Coord{1, 0}, Wall0)
	b.SetCell(Coord{0, 1}, Wall1)
	b.SetCell(Coord{2, 1}, Wall2)
	b.SetCell(Coord{1, 2}, Wall3)

	var seen []CellState
	b.VisitAdjacent(Coord{1, 1}, func(_ Coord, s CellState) bool {
		seen = append(seen, s)
		return false
	})
	if len(seen) != 4 {
		t.Fatalf("expected 4 neighbours, got %d: %v", len(seen), seen)
	}
}

func TestVisitRowsColsOutwardStopsAtWall(t *testing.T) {
	b := NewBasicBoard(1, 5)
	b.SetCell(Coord{0, 3}, Wall0)

	var visited []Coord
	b.VisitRowsColsOutward(Coord{0, 1}, func(c Coord, _ CellState) bool {
		visited = append(visited, c)
		return false
	}, Right)

	if len(visited) != 1 || visited[0] != (Coord{0, 2}) {
		t.Fatalf("expected ray to stop before the wall, got %v", visited)
	}
}

func TestVisitRowsColsOutwardEarlyStop(t *testing.T) {
	b := NewBasicBoard(1, 5)
	count := 0
	b.VisitRowsColsOutward(Coord{0, 0}, func(_ Coord, _ CellState) bool {
		count++
		return true // stop after first
	}, Right)
	if count != 1 {
		t.Fatalf("expected early stop after 1 visit, got %d", count)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	b := NewBasicBoard(2, 2)
	b.SetCell(Coord{0, 0}, Wall1)
	b.SetCell(Coord{1, 1}, Bulb)
	want := "1.\n.*"
	if got := b.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestEqualAndClone(t *testing.T) {
	b := NewBasicBoard(2, 2)
	b.SetCell(Coord{0, 0}, Wall2)
	clone := b.Clone()
	if !b.Equal(clone) {
		t.Fatal("clone should equal original")
	}
	clone.SetCell(Coord{1, 1}, Bulb)
	if b.Equal(clone) {
		t.Fatal("mutating clone should not affect original")
	}
}
