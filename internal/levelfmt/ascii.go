// Package levelfmt parses and formats the ASCII level representation
// spec.md §6 defines, plus a YAML level-pack corpus format and a lightweight
// move-history replay, grounded on the original's ASCIILevelCreator and
// BoardModel.
package levelfmt

import (
	"fmt"
	"strings"

	"github.com/cuzdav/akari/internal/model"
)

// ParseASCII parses a level given as one string per row. All rows must have
// equal length; any unrecognized character is a fatal error, matching the
// serialization contract in spec.md §7 ("invalid serialization input is a
// fatal error").
func ParseASCII(rows []string) (*model.BasicBoard, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("levelfmt: no rows given")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("levelfmt: row %d has width %d, want %d", i, len(row), width)
		}
	}

	board := model.NewBasicBoard(len(rows), width)
	for r, row := range rows {
		for c := 0; c < width; c++ {
			state := model.StateFromChar(row[c])
			board.SetCell(model.Coord{Row: int8(r), Col: int8(c)}, state)
		}
	}
	return board, nil
}

// ParseASCIIString is ParseASCII over a single newline-joined string, the
// form most literal test fixtures and CLI files use.
func ParseASCIIString(text string) (*model.BasicBoard, error) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("levelfmt: empty level text")
	}
	return ParseASCII(strings.Split(text, "\n"))
}

// FormatASCII renders board back to its row-per-line text form. Together
// with ParseASCII this satisfies spec.md §8 testable property 8
// (parse-then-format round-trips to the original text).
func FormatASCII(board *model.BasicBoard) string {
	return board.Format()
}
