package leiser

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// Piece is a directional piece. The zero Piece is the empty square.
type Piece struct {
	Colour    Colour
	Kind      Kind
	Direction Direction
}

// NewPiece returns a piece, enforcing the kind/direction pairing.
func NewPiece(colour Colour, kind Kind, direction Direction) (Piece, error) {
	p := Piece{Colour: colour, Kind: kind, Direction: direction}
	if err := ValidatePiece(p); err != nil {
		return Piece{}, err
	}
	return p, nil
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// WithDirection returns a copy of p facing d.
func (p Piece) WithDirection(d Direction) Piece {
	p.Direction = d
	return p
}

// String returns a readable description such as "White Monarch North".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%v %v %v", p.Colour, p.Kind, p.Direction)
}

// ValidatePiece enforces the pairing rule: monarchs face orthogonally and
// pawns face diagonally. Empty pieces and unknown colours are rejected.
func ValidatePiece(p Piece) error {
	if p.Colour != White && p.Colour != Black {
		return fmt.Errorf("colour %d: %w", p.Colour, errors.ErrInvalidPiece)
	}
	switch p.Kind {
	case Monarch:
		if p.Direction.Class() == Orthogonal {
			return nil
		}
	case Pawn:
		if p.Direction.Class() == Diagonal {
			return nil
		}
	}
	return fmt.Errorf("%v facing %v: %w", p.Kind, p.Direction, errors.ErrInvalidPiece)
}
