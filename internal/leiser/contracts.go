package leiser

// Indexable is the checked access contract of a board over location type L
// and piece type P. Every method validates its arguments and leaves the board
// untouched on failure.
type Indexable[L comparable, P any] interface {
	ValidateLocation(loc L) error
	ValidatePiece(p P) error
	Get(loc L) (P, error)
	Set(loc L, p P) error
	Remove(loc L) error
}

// UncheckedIndexable is the fast path of a board. Its methods never fail and
// never validate; callers must already have proven the arguments legal.
type UncheckedIndexable[L comparable, P any] interface {
	GetUnchecked(loc L) P
	SetUnchecked(loc L, p P)
	RemoveUnchecked(loc L)
}

// Grid combines both access tiers. Board geometries other than the 8x8
// Board can reuse the action contract by implementing it.
type Grid[L comparable, P any] interface {
	Indexable[L, P]
	UncheckedIndexable[L, P]
}

// Action is a board transformation over board type B. ApplyUnchecked may
// only be called after Validate succeeded on the same board.
type Action[B any] interface {
	Validate(board B) error
	ApplyUnchecked(board B)
}

// Apply validates action against board and applies it. The board is not
// modified when validation fails.
func Apply[B any](action Action[B], board B) error {
	if err := action.Validate(board); err != nil {
		return err
	}
	// Validate passed on this board, which is the precondition of the fast path.
	action.ApplyUnchecked(board)
	return nil
}

var _ Grid[Location, Piece] = (*Board)(nil)
