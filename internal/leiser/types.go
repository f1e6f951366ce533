// Package leiser provides the core LeiserChess types: locations, directions,
// pieces and the 8x8 board.
package leiser

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a piece type. NoKind marks an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Monarch
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Monarch"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Class partitions directions into two disjoint sets.
type Class int

const (
	NoClass Class = iota
	Orthogonal
	Diagonal
)

// String returns the string representation of a class.
func (c Class) String() string {
	switch c {
	case Orthogonal:
		return "Orthogonal"
	case Diagonal:
		return "Diagonal"
	default:
		return "None"
	}
}

// Direction is the way a piece faces. Orthogonal directions come first, each
// class listed in clockwise order.
type Direction int

const (
	NoDirection Direction = iota
	North
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
	numDirections
)

// Directions lists every facing, orthogonal class first.
var Directions = []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

// directionsPerClass is the length of each clockwise cycle.
const directionsPerClass = 4

var directionNames = [...]string{
	NoDirection: "None",
	North:       "North",
	East:        "East",
	South:       "South",
	West:        "West",
	NorthEast:   "NorthEast",
	SouthEast:   "SouthEast",
	SouthWest:   "SouthWest",
	NorthWest:   "NorthWest",
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	if d >= 0 && d < numDirections {
		return directionNames[d]
	}
	return "Unknown"
}

// Class returns the class the direction belongs to.
func (d Direction) Class() Class {
	switch d {
	case North, East, South, West:
		return Orthogonal
	case NorthEast, SouthEast, SouthWest, NorthWest:
		return Diagonal
	default:
		return NoClass
	}
}

// Valid reports whether d is one of the eight facings.
func (d Direction) Valid() bool {
	return d.Class() != NoClass
}

// cycleIndex returns the position of d in its class's clockwise cycle.
func (d Direction) cycleIndex() int {
	if d.Class() == Diagonal {
		return int(d - NorthEast)
	}
	return int(d - North)
}

// turned returns the direction quarters steps clockwise from d, within d's class.
func (d Direction) turned(quarters int) Direction {
	base := North
	if d.Class() == Diagonal {
		base = NorthEast
	}
	idx := ((d.cycleIndex()+quarters)%directionsPerClass + directionsPerClass) % directionsPerClass
	return base + Direction(idx)
}

// Delta returns the file and rank offset of one step in direction d.
// North increases the rank.
func (d Direction) Delta() (df, dr int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case NorthWest:
		return -1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Rotation classifies an in-place turn between two directions of one class.
type Rotation byte

const (
	Clockwise        Rotation = 'R'
	HalfTurn         Rotation = 'U'
	CounterClockwise Rotation = 'L'
)

// Rotations lists the three turns in generation order.
var Rotations = []Rotation{Clockwise, CounterClockwise, HalfTurn}

// String returns the single letter rotation code.
func (r Rotation) String() string {
	switch r {
	case Clockwise, HalfTurn, CounterClockwise:
		return string(rune(r))
	default:
		return "?"
	}
}

// quarters returns the number of clockwise quarter turns r represents.
func (r Rotation) quarters() (int, bool) {
	switch r {
	case Clockwise:
		return 1, true
	case HalfTurn:
		return 2, true
	case CounterClockwise:
		return 3, true
	default:
		return 0, false
	}
}

// RotationBetween returns the turn that takes a piece facing from to facing to.
// Both directions must be valid, distinct and of the same class.
func RotationBetween(from, to Direction) (Rotation, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("%v to %v: %w", from, to, errors.ErrInvalidRotation)
	}
	if from.Class() != to.Class() {
		return 0, fmt.Errorf("%v to %v crosses direction classes: %w", from, to, errors.ErrInvalidRotation)
	}
	switch (to.cycleIndex() - from.cycleIndex() + directionsPerClass) % directionsPerClass {
	case 1:
		return Clockwise, nil
	case 2:
		return HalfTurn, nil
	case 3:
		return CounterClockwise, nil
	default:
		return 0, fmt.Errorf("%v to %v is not a turn: %w", from, to, errors.ErrInvalidRotation)
	}
}

// Rotate applies r to d. It is the inverse of RotationBetween.
func (d Direction) Rotate(r Rotation) (Direction, error) {
	q, ok := r.quarters()
	if !ok || !d.Valid() {
		return NoDirection, fmt.Errorf("rotate %v by %v: %w", d, r, errors.ErrInvalidRotation)
	}
	return d.turned(q), nil
}
