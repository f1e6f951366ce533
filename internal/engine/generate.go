package engine

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// GenerateActions returns the legal actions of the piece on loc: the three
// rotations in R, L, U order, then one-step moves onto empty neighbours, then
// shoves onto occupied neighbours. Moves and shoves list loc as their victim
// so the origin is vacated.
func GenerateActions(board *leiser.Board, loc leiser.Location) ([]StandardAction, error) {
	piece, err := board.Get(loc)
	if err != nil {
		return nil, err
	}
	if piece.IsEmpty() {
		return nil, fmt.Errorf("%v: %w", loc, errors.ErrEmptySquare)
	}

	rotations := lo.FilterMap(leiser.Rotations, func(r leiser.Rotation, _ int) (StandardAction, bool) {
		action, err := NewRotation(loc, piece, r)
		return action, err == nil
	})

	steps := lo.Map(loc.Neighbours(), func(dst leiser.Location, _ int) StandardAction {
		return NewMove(loc, dst, piece)
	})
	moves, shoves := lo.FilterReject(steps, func(a StandardAction, _ int) bool {
		// Neighbours only returns on-board locations.
		return board.GetUnchecked(a.Destination).IsEmpty()
	})

	candidates := lo.Flatten([][]StandardAction{rotations, moves, shoves})
	return lo.Filter(candidates, func(a StandardAction, _ int) bool {
		return a.Validate(board) == nil
	}), nil
}

// GenerateAll returns the legal actions of every piece of colour, square by
// square from a1.
func GenerateAll(board *leiser.Board, colour leiser.Colour) []StandardAction {
	own := lo.Filter(board.Occupied(), func(loc leiser.Location, _ int) bool {
		// Occupied only returns on-board locations.
		return board.GetUnchecked(loc).Colour == colour
	})
	return lo.FlatMap(own, func(loc leiser.Location, _ int) []StandardAction {
		// Occupied squares never fail generation.
		actions, _ := GenerateActions(board, loc)
		return actions
	})
}
