package notation

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// MoveMarker prefixes the destination square of a plain relocation.
const MoveMarker = '_'

// Move is what the move notation needs to know about an action.
// engine.StandardAction implements it.
type Move interface {
	Target() leiser.Location
	MovedPiece() leiser.Piece
	Rotation() (leiser.Direction, bool)
}

// EncodeMove writes move notation: "_e4" for a plain relocation to e4, or
// "e4R" for a clockwise rotation in place on e4 (L and U for the other turns).
func EncodeMove(m Move) (string, error) {
	dest := m.Target()
	if !dest.Valid() {
		return "", fmt.Errorf("destination %v: %w", dest, errors.ErrInvalidLocation)
	}
	newDirection, rotated := m.Rotation()
	if !rotated {
		return string(MoveMarker) + dest.String(), nil
	}
	r, err := leiser.RotationBetween(m.MovedPiece().Direction, newDirection)
	if err != nil {
		return "", err
	}
	return dest.String() + r.String(), nil
}

// DecodeMove always fails: the notation omits the source square, so the
// action cannot be reconstructed from its text.
func DecodeMove(text string) error {
	return fmt.Errorf("%q: %w", text, errors.ErrMoveDecodeUnsupported)
}
