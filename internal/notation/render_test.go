package notation

import (
	"errors"
	"testing"

	lcerrors "github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

func TestRender(t *testing.T) {
	board, err := DecodeBoard("nn6nn/8/8/8/8/8/8/3SS4")
	if err != nil {
		t.Fatalf("DecodeBoard() error = %v", err)
	}
	got, err := Render(board)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "nn . . . . . .nn\n" +
		" . . . . . . . .\n" +
		" . . . . . . . .\n" +
		" . . . . . . . .\n" +
		" . . . . . . . .\n" +
		" . . . . . . . .\n" +
		" . . . . . . . .\n" +
		" . . .SS . . . ."
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_InvalidBoard(t *testing.T) {
	if _, err := Render(leiser.NewBoard()); !errors.Is(err, lcerrors.ErrInvalidBoard) {
		t.Errorf("Render(empty) error = %v; want ErrInvalidBoard", err)
	}
}
