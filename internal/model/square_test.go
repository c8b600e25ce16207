package model

import "testing"

func TestAllSquaresOrderIsRankMajor(t *testing.T) {
	if len(AllSquares) != 64 {
		t.Fatalf("expected 64 squares, got %d", len(AllSquares))
	}
	if AllSquares[0] != NewSquare(0, 0) {
		t.Fatalf("expected a1 first, got %v", AllSquares[0])
	}
	if AllSquares[7] != NewSquare(7, 0) {
		t.Fatalf("expected h1 eighth, got %v", AllSquares[7])
	}
	if AllSquares[8] != NewSquare(0, 1) {
		t.Fatalf("expected a2 ninth, got %v", AllSquares[8])
	}
	if AllSquares[63] != NewSquare(7, 7) {
		t.Fatalf("expected h8 last, got %v", AllSquares[63])
	}
}

func TestSquareString(t *testing.T) {
	cases := map[Square]string{
		NewSquare(0, 0): "a1",
		NewSquare(7, 7): "h8",
		NewSquare(4, 3): "e4",
	}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Fatalf("square %v: got %q want %q", sq, got, want)
		}
	}
	if got := NewSquare(8, 0).String(); got != "-" {
		t.Fatalf("invalid square should render as '-', got %q", got)
	}
}

func TestColorOpponent(t *testing.T) {
	if White.Opponent() != Black {
		t.Fatalf("white's opponent should be black")
	}
	if Black.Opponent() != White {
		t.Fatalf("black's opponent should be white")
	}
}
