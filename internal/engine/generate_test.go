package engine

import (
	"testing"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
	"github.com/lgbarn/leiserchess-go/internal/notation"
	"github.com/lgbarn/leiserchess-go/internal/testutil"
)

func moveTexts(t *testing.T, actions []StandardAction) []string {
	t.Helper()
	texts := make([]string, 0, len(actions))
	for _, a := range actions {
		text, err := notation.EncodeMove(a)
		if err != nil {
			t.Fatalf("EncodeMove(%v) failed: %v", a, err)
		}
		texts = append(texts, text)
	}
	return texts
}

func TestGenerateActions(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		square string
		want   []string
	}{
		{
			name:   "lone monarch in corner",
			board:  "NN7",
			square: "a1",
			want:   []string{"a1R", "a1L", "a1U", "_b1", "_a2", "_b2"},
		},
		{
			name:   "pawn shoves toward centre but not monarch",
			board:  "nn7/1NE6/2se5",
			square: "b2",
			want:   []string{"b2R", "b2L", "b2U", "_b1", "_c1", "_a2", "_c2", "_a3", "_b3", "_c3"},
		},
		{
			name:   "pawn cannot shove outward",
			board:  "nn7/1NE6/2se5",
			square: "c3",
			want:   []string{"c3R", "c3L", "c3U", "_c2", "_d2", "_b3", "_d3", "_b4", "_c4", "_d4"},
		},
		{
			name:   "monarch shoves from corner",
			board:  "nn7/1NE6/2se5",
			square: "a1",
			want:   []string{"a1R", "a1L", "a1U", "_b1", "_a2", "_b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustDecodeBoard(t, tt.board)
			actions, err := GenerateActions(board, testutil.MustParseLocation(t, tt.square))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, moveTexts(t, actions), tt.want)
		})
	}
}

func TestGenerateActions_VacatesSource(t *testing.T) {
	board := testutil.MustDecodeBoard(t, "nn7/1NE6/2se5")
	b2 := testutil.MustParseLocation(t, "b2")
	actions, err := GenerateActions(board, b2)
	testutil.AssertNoError(t, err)

	for _, a := range actions {
		if a.IsRotation() {
			testutil.AssertEqual(t, len(a.Victims), 0, "rotation %v", a)
			continue
		}
		testutil.AssertEqual(t, a.Victims, []leiser.Location{b2}, "move %v", a)
	}

	shove := actions[len(actions)-1]
	after := board.Copy()
	testutil.AssertNoError(t, shove.Apply(after))
	testutil.AssertEqual(t, testutil.BoardText(t, after), "nn7/8/2NE5/8/8/8/8/8")
	testutil.AssertEqual(t, after.Count(), board.Count()-1)
}

func TestGenerateActions_Errors(t *testing.T) {
	board := testutil.MustDecodeBoard(t, "NN7")

	_, err := GenerateActions(board, testutil.MustParseLocation(t, "e4"))
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)

	_, err = GenerateActions(board, leiser.Location{File: 3, Rank: 8})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidLocation)
}

func TestGenerateAll(t *testing.T) {
	board := testutil.MustDecodeBoard(t, "nn7/1NE6/2se5")

	white := GenerateAll(board, leiser.White)
	b2, err := GenerateActions(board, testutil.MustParseLocation(t, "b2"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moveTexts(t, white), moveTexts(t, b2))

	black := GenerateAll(board, leiser.Black)
	testutil.AssertEqual(t, len(black), 16)
	for _, a := range black {
		testutil.AssertEqual(t, a.Piece.Colour, leiser.Black, "action %v", a)
	}
}

func TestGenerateAll_OpeningPosition(t *testing.T) {
	board := testutil.MustDecodeBoard(t, notation.OpeningPosition)

	for _, colour := range []leiser.Colour{leiser.White, leiser.Black} {
		t.Run(colour.String(), func(t *testing.T) {
			actions := GenerateAll(board, colour)
			testutil.AssertTrue(t, len(actions) > 0)
			for _, a := range actions {
				after := board.Copy()
				if err := a.Apply(after); err != nil {
					t.Fatalf("generated action %v does not apply: %v", a, err)
				}
				testutil.AssertNoError(t, after.ValidateBoard(), "after %v", a)
				testutil.AssertTrue(t, after.Count() <= board.Count(), "after %v", a)
			}
		})
	}
}
