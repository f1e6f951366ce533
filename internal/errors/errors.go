// Package errors provides sentinel errors and error types for leiserchess-go.
// It defines the stable failure taxonomy of the rule core and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the rule core.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrInvalidLocation indicates a coordinate outside [0,7].
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidPiece indicates a kind/direction pairing that is not allowed,
	// or a piece token outside the notation alphabet.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidBoard indicates a board whose piece count is out of range or
	// which holds an invalid piece.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidAction indicates an action that fails validation. The
	// specific reason is one of the ErrXxx reasons below, all of which wrap it.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidRotation indicates two directions not related by a same-class turn.
	ErrInvalidRotation = errors.New("invalid rotation")

	// ErrRemoveEmpty indicates a remove from an already empty square.
	ErrRemoveEmpty = errors.New("cannot remove piece from empty square")

	// ErrEmptySquare indicates action generation from a square with no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrUnparseable indicates board text that no notation token matches.
	ErrUnparseable = errors.New("unparseable board notation")

	// ErrMoveDecodeUnsupported is returned when move text is decoded. The move
	// notation does not carry the source square.
	ErrMoveDecodeUnsupported = errors.New("move notation cannot be decoded")
)

// Action rejection reasons. Each wraps ErrInvalidAction.
var (
	ErrTooManyVictims     = fmt.Errorf("%w: too many victims", ErrInvalidAction)
	ErrMonarchShove       = fmt.Errorf("%w: monarchs cannot be shoved", ErrInvalidAction)
	ErrShoveFromLowerQi   = fmt.Errorf("%w: must shove from higher qi square", ErrInvalidAction)
	ErrRotationNotInPlace = fmt.Errorf("%w: rotation requires identical source and destination", ErrInvalidAction)
	ErrNotAdjacent        = fmt.Errorf("%w: source must be adjacent to destination", ErrInvalidAction)
	ErrSourceMismatch     = fmt.Errorf("%w: piece is not on the source square", ErrInvalidAction)
)

// Session and configuration errors.
var (
	// ErrHistoryFull indicates the session reached its board history capacity.
	ErrHistoryFull = errors.New("history capacity reached")

	// ErrActionLimit indicates the session reached its action capacity.
	ErrActionLimit = errors.New("action capacity reached")

	// ErrWrongTurn indicates an action moving a piece of the side not on move.
	ErrWrongTurn = errors.New("piece does not belong to side to move")

	// ErrNothingToUndo indicates an undo with no applied actions.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a notation decoding error with its position in the input.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being decoded
	Column int    // Column number (1-based)
	Got    string // What was found at Column
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It lets callers that import this package avoid aliasing the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
