package model

import "fmt"

// Coord is a (row, col) position on a board. Small signed integers, exactly
// as the original's int8_t fields, since boards are capped at 25x25.
type Coord struct {
	Row int8
	Col int8
}

// InRange reports whether c lies within a board of the given dimensions.
func (c Coord) InRange(height, width int) bool {
	return c.Row >= 0 && int(c.Row) < height && c.Col >= 0 && int(c.Col) < width
}

// Step returns the coordinate one unit in direction d from c.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.delta()
	return Coord{Row: c.Row + int8(dr), Col: c.Col + int8(dc)}
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// OptCoord is an optional Coord, mirroring the original's std::optional<Coord>
// used for reference_location and similar "maybe there's a cell responsible"
// fields.
type OptCoord struct {
	Coord Coord
	Valid bool
}

// Some wraps c as a present OptCoord.
func Some(c Coord) OptCoord { return OptCoord{Coord: c, Valid: true} }

// NoCoord is the absent OptCoord.
var NoCoord = OptCoord{}
