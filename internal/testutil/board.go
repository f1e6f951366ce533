package testutil

import (
	"testing"

	"github.com/lgbarn/leiserchess-go/internal/leiser"
	"github.com/lgbarn/leiserchess-go/internal/notation"
)

// MustDecodeBoard decodes board notation, failing the test on error.
func MustDecodeBoard(t testing.TB, text string) *leiser.Board {
	t.Helper()
	board, err := notation.DecodeBoard(text)
	if err != nil {
		t.Fatalf("DecodeBoard(%q) failed: %v", text, err)
	}
	return board
}

// MustParseLocation parses square notation such as "e4", failing the test on error.
func MustParseLocation(t testing.TB, square string) leiser.Location {
	t.Helper()
	loc, err := leiser.ParseLocation(square)
	if err != nil {
		t.Fatalf("ParseLocation(%q) failed: %v", square, err)
	}
	return loc
}

// MustPiece decodes a two-letter piece token such as "NE", failing the test on error.
func MustPiece(t testing.TB, token string) leiser.Piece {
	t.Helper()
	p, err := notation.DecodePiece(token)
	if err != nil {
		t.Fatalf("DecodePiece(%q) failed: %v", token, err)
	}
	return p
}

// BoardText encodes board, failing the test on error.
func BoardText(t testing.TB, board *leiser.Board) string {
	t.Helper()
	text, err := notation.EncodeBoard(board)
	if err != nil {
		t.Fatalf("EncodeBoard() failed: %v", err)
	}
	return text
}
