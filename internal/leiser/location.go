package leiser

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// Constants for board dimensions and square notation.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Location is a square on the board. File and Rank are 0-based; a1 is {0, 0}.
// A Location may hold out-of-range coordinates; checked board operations
// reject those with ErrInvalidLocation.
type Location struct {
	File int
	Rank int
}

// NewLocation returns the location at file, rank or ErrInvalidLocation.
func NewLocation(file, rank int) (Location, error) {
	loc := Location{File: file, Rank: rank}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("(%d,%d): %w", file, rank, errors.ErrInvalidLocation)
	}
	return loc, nil
}

// Valid reports whether both coordinates are in [0, BoardSize).
func (l Location) Valid() bool {
	return l.File >= 0 && l.File < BoardSize && l.Rank >= 0 && l.Rank < BoardSize
}

// IsAdjacent reports whether other is one king step away from l.
// A location is never adjacent to itself.
func (l Location) IsAdjacent(other Location) bool {
	if l == other {
		return false
	}
	return max(abs(l.File-other.File), abs(l.Rank-other.Rank)) <= 1
}

// Qi is the squared distance from the board centre, scaled so every file and
// rank maps to an odd offset. It is 2 on the four centre squares and 98 on
// the corners.
func (l Location) Qi() int {
	dx := 2*l.File - (BoardSize - 1)
	dy := 2*l.Rank - (BoardSize - 1)
	return dx*dx + dy*dy
}

// Offset returns the location df files and dr ranks away. The result may be
// off the board.
func (l Location) Offset(df, dr int) Location {
	return Location{File: l.File + df, Rank: l.Rank + dr}
}

// neighbourOrder lists the eight steps rank by rank from the lower left, so
// Neighbours comes out in board order.
var neighbourOrder = []Direction{SouthWest, South, SouthEast, West, East, NorthWest, North, NorthEast}

// Step returns the location one step from l in direction d. The result may be
// off the board.
func (l Location) Step(d Direction) Location {
	return l.Offset(d.Delta())
}

// Neighbours returns the on-board locations adjacent to l, rank by rank from
// the lower left.
func (l Location) Neighbours() []Location {
	neighbours := make([]Location, 0, len(neighbourOrder))
	for _, d := range neighbourOrder {
		if n := l.Step(d); n.Valid() {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// String returns the square notation, e.g. "e4".
func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("(%d,%d)", l.File, l.Rank)
	}
	return string([]byte{byte(FileBase + l.File), byte(RankBase + l.Rank)})
}

// ParseLocation converts square notation such as "a1" or "h8" to a Location.
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidLocation)
	}
	loc := Location{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidLocation)
	}
	return loc, nil
}
