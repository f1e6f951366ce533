// Package engine implements LeiserChess actions: validation, application and
// generation of the standard move, shove and rotation.
package engine

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// MaxVictims is the largest number of squares an action may clear.
const MaxVictims = 3

// Grid is the board contract actions run against. *leiser.Board satisfies it.
type Grid = leiser.Grid[leiser.Location, leiser.Piece]

// StandardAction is a single LeiserChess action.
//
// ApplyUnchecked clears every victim and then writes Piece at Destination.
// It never vacates Source on its own: a relocation that should leave its
// origin empty must list Source among the Victims. GenerateActions always
// does so.
type StandardAction struct {
	Victims     []leiser.Location // Squares cleared before the piece is placed
	Source      leiser.Location   // Where the acting piece starts
	Destination leiser.Location   // Where the acting piece ends
	Piece       leiser.Piece      // The acting piece, with its original facing
	// NewDirection is the facing after an in-place rotation, or NoDirection
	// when the action is not a rotation.
	NewDirection leiser.Direction
}

var _ leiser.Action[Grid] = StandardAction{}

// NewMove creates a one-step relocation from src to dst that vacates src.
func NewMove(src, dst leiser.Location, piece leiser.Piece) StandardAction {
	return StandardAction{
		Victims:     []leiser.Location{src},
		Source:      src,
		Destination: dst,
		Piece:       piece,
	}
}

// NewRotation creates an in-place rotation of the piece on loc.
func NewRotation(loc leiser.Location, piece leiser.Piece, r leiser.Rotation) (StandardAction, error) {
	dir, err := piece.Direction.Rotate(r)
	if err != nil {
		return StandardAction{}, err
	}
	return StandardAction{
		Source:       loc,
		Destination:  loc,
		Piece:        piece,
		NewDirection: dir,
	}, nil
}

// IsRotation reports whether the action turns its piece in place.
func (a StandardAction) IsRotation() bool {
	return a.NewDirection != leiser.NoDirection
}

// Target returns the square the acting piece ends on.
func (a StandardAction) Target() leiser.Location {
	return a.Destination
}

// MovedPiece returns the acting piece with its original facing.
func (a StandardAction) MovedPiece() leiser.Piece {
	return a.Piece
}

// Rotation returns the new facing and true for an in-place rotation.
func (a StandardAction) Rotation() (leiser.Direction, bool) {
	return a.NewDirection, a.IsRotation()
}

// ResultPiece returns the piece as it stands after the action.
func (a StandardAction) ResultPiece() leiser.Piece {
	if a.IsRotation() {
		return a.Piece.WithDirection(a.NewDirection)
	}
	return a.Piece
}

// Validate checks the action against board. The first failing rule wins;
// every rule failure wraps errors.ErrInvalidAction except for malformed
// locations, rotations and pieces, which carry their own sentinels.
func (a StandardAction) Validate(board Grid) error {
	if len(a.Victims) > MaxVictims {
		return fmt.Errorf("%d victims: %w", len(a.Victims), errors.ErrTooManyVictims)
	}

	if err := board.ValidateLocation(a.Source); err != nil {
		return errors.Wrap(err, "source")
	}
	for _, victim := range a.Victims {
		if err := board.ValidateLocation(victim); err != nil {
			return errors.Wrap(err, "victim")
		}
	}

	occupant, err := board.Get(a.Destination)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !occupant.IsEmpty() && !a.rotatesOccupant(occupant) {
		if occupant.Kind == leiser.Monarch {
			return fmt.Errorf("%v on %v: %w", occupant, a.Destination, errors.ErrMonarchShove)
		}
		if a.Source.Qi() <= a.Destination.Qi() {
			return fmt.Errorf("qi %d at %v, %d at %v: %w",
				a.Source.Qi(), a.Source, a.Destination.Qi(), a.Destination, errors.ErrShoveFromLowerQi)
		}
	}

	if a.IsRotation() {
		if a.Source != a.Destination {
			return fmt.Errorf("%v to %v: %w", a.Source, a.Destination, errors.ErrRotationNotInPlace)
		}
		if _, err := leiser.RotationBetween(a.Piece.Direction, a.NewDirection); err != nil {
			return err
		}
	} else if !a.Source.IsAdjacent(a.Destination) {
		return fmt.Errorf("%v to %v: %w", a.Source, a.Destination, errors.ErrNotAdjacent)
	}

	return board.ValidatePiece(a.ResultPiece())
}

// rotatesOccupant reports whether occupant is the piece this action turns in
// place. Such a piece is not being shoved.
func (a StandardAction) rotatesOccupant(occupant leiser.Piece) bool {
	return a.IsRotation() && a.Source == a.Destination && occupant == a.Piece
}

// ApplyUnchecked clears the victims and places the resulting piece on the
// destination. Validate must have succeeded on board first.
func (a StandardAction) ApplyUnchecked(board Grid) {
	for _, victim := range a.Victims {
		board.RemoveUnchecked(victim)
	}
	board.SetUnchecked(a.Destination, a.ResultPiece())
}

// Apply validates the action and applies it. board is unchanged on error.
func (a StandardAction) Apply(board Grid) error {
	return leiser.Apply[Grid](a, board)
}

// String returns a debug form naming source and destination.
func (a StandardAction) String() string {
	if a.IsRotation() {
		return fmt.Sprintf("%v %v@%v->%v", a.Piece, a.Source, a.Piece.Direction, a.NewDirection)
	}
	return fmt.Sprintf("%v %v-%v", a.Piece, a.Source, a.Destination)
}
