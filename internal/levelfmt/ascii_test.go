package levelfmt

import "testing"

func TestParseFormatRoundTrip(t *testing.T) {
	input := "0.0\n.4.\n0.0"
	board, err := ParseASCIIString(input)
	if err != nil {
		t.Fatalf("ParseASCIIString: %v", err)
	}
	if got := FormatASCII(board); got != input {
		t.Fatalf("round trip = %q, want %q", got, input)
	}
}

func TestParseASCIIRaggedRowsIsError(t *testing.T) {
	_, err := ParseASCII([]string{"0..", "0."})
	if err == nil {
		t.Fatal("expected an error for ragged row widths")
	}
}

func TestParseASCIIEmptyIsError(t *testing.T) {
	if _, err := ParseASCII(nil); err == nil {
		t.Fatal("expected an error for no rows")
	}
	if _, err := ParseASCIIString(""); err == nil {
		t.Fatal("expected an error for empty text")
	}
}

func TestParseASCIIInvalidCharPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unrecognized level-format character")
		}
	}()
	ParseASCIIString("?..")
}

func TestParseASCIITrimsTrailingNewline(t *testing.T) {
	board, err := ParseASCIIString("*1.\n")
	if err != nil {
		t.Fatalf("ParseASCIIString: %v", err)
	}
	if board.Height() != 1 || board.Width() != 3 {
		t.Fatalf("dims = %dx%d, want 1x3", board.Height(), board.Width())
	}
}
