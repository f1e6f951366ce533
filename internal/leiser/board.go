package leiser

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// MaxPieces is the largest number of pieces a valid board may hold.
const MaxPieces = 32

// Board is the 8x8 grid. Squares is indexed [rank][file]; an empty square
// holds the zero Piece.
//
// The checked operations (Get, Set, Remove) bounds-check and enforce the piece
// invariant. The Unchecked variants skip every check and are only for callers
// that have already established legality, such as a validated action.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ValidateLocation returns ErrInvalidLocation for coordinates off the board.
func (b *Board) ValidateLocation(loc Location) error {
	if !loc.Valid() {
		return fmt.Errorf("%v: %w", loc, errors.ErrInvalidLocation)
	}
	return nil
}

// ValidatePiece enforces the kind/direction pairing.
func (b *Board) ValidatePiece(p Piece) error {
	return ValidatePiece(p)
}

// ValidateBoard checks every occupied square's piece and that the piece count
// is between 1 and MaxPieces.
func (b *Board) ValidateBoard() error {
	count := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p.IsEmpty() {
				continue
			}
			if err := ValidatePiece(p); err != nil {
				loc := Location{File: file, Rank: rank}
				return fmt.Errorf("%w: square %v: %w", errors.ErrInvalidBoard, loc, err)
			}
			count++
		}
	}
	if count == 0 || count > MaxPieces {
		return fmt.Errorf("%w: %d pieces, want 1 to %d", errors.ErrInvalidBoard, count, MaxPieces)
	}
	return nil
}

// Get returns the piece at loc; the zero Piece if the square is empty.
func (b *Board) Get(loc Location) (Piece, error) {
	if err := b.ValidateLocation(loc); err != nil {
		return Piece{}, err
	}
	return b.GetUnchecked(loc), nil
}

// Set places p at loc, replacing any occupant.
func (b *Board) Set(loc Location, p Piece) error {
	if err := b.ValidateLocation(loc); err != nil {
		return err
	}
	if err := b.ValidatePiece(p); err != nil {
		return err
	}
	b.SetUnchecked(loc, p)
	return nil
}

// Remove empties loc. It fails if loc is already empty.
func (b *Board) Remove(loc Location) error {
	if err := b.ValidateLocation(loc); err != nil {
		return err
	}
	if b.GetUnchecked(loc).IsEmpty() {
		return fmt.Errorf("%v: %w", loc, errors.ErrRemoveEmpty)
	}
	b.RemoveUnchecked(loc)
	return nil
}

// GetUnchecked returns the piece at loc. loc must be on the board.
func (b *Board) GetUnchecked(loc Location) Piece {
	return b.Squares[loc.Rank][loc.File]
}

// SetUnchecked places p at loc. loc must be on the board and p must satisfy
// ValidatePiece; neither is checked.
func (b *Board) SetUnchecked(loc Location, p Piece) {
	b.Squares[loc.Rank][loc.File] = p
}

// RemoveUnchecked empties loc whether or not it is occupied. loc must be on
// the board.
func (b *Board) RemoveUnchecked(loc Location) {
	b.Squares[loc.Rank][loc.File] = Piece{}
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	count := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if !b.Squares[rank][file].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// Occupied returns the occupied locations, rank by rank from a1.
func (b *Board) Occupied() []Location {
	var locs []Location
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if !b.Squares[rank][file].IsEmpty() {
				locs = append(locs, Location{File: file, Rank: rank})
			}
		}
	}
	return locs
}
