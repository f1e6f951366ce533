package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// OpeningPosition is the standard starting board.
const OpeningPosition = "nn6nn/sesw1sesw1sesw/8/8/8/8/NENW1NENW1NENW/SS6SS"

// Position is a decoded board together with the optional side-to-move marker.
// The marker is not part of the Board model.
type Position struct {
	Board         *leiser.Board
	ToMove        leiser.Colour
	HasSideToMove bool
}

// DecodeBoard parses board notation. A trailing side-to-move marker is
// accepted and dropped.
func DecodeBoard(text string) (*leiser.Board, error) {
	pos, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return pos.Board, nil
}

// Decode parses board notation and reports the side-to-move marker if one is
// present. Rows are filled from rank 1 (the first row of the text) upwards.
// Short rows and missing rows are left empty. The decoded board is not
// checked with ValidateBoard.
func Decode(text string) (Position, error) {
	pos := Position{Board: leiser.NewBoard(), ToMove: leiser.White}
	file, rank := 0, 0

	for cursor := 0; cursor < len(text); {
		tok := Scan(text, cursor)
		if pos.HasSideToMove && tok.Type != WhitespaceToken {
			return Position{}, parseError(text, cursor, tok, "after side to move")
		}

		switch tok.Type {
		case PieceToken:
			loc := leiser.Location{File: file, Rank: rank}
			if !loc.Valid() {
				return Position{}, parseError(text, cursor, tok, "square off the board")
			}
			// Every entry of tokenPieces satisfies ValidatePiece.
			pos.Board.SetUnchecked(loc, tokenPieces[tok.Text])
			file++
		case EmptyRunToken:
			file += tok.Value
			if file > leiser.BoardSize {
				return Position{}, parseError(text, cursor, tok, "row longer than board")
			}
		case RowSeparatorToken:
			rank++
			file = 0
			if rank >= leiser.BoardSize {
				return Position{}, parseError(text, cursor, tok, "too many rows")
			}
		case WhitespaceToken:
		case SideToMoveToken:
			pos.HasSideToMove = true
			pos.ToMove = sideToMove(tok.Text[0])
		default:
			return Position{}, parseError(text, cursor, tok, "")
		}
		cursor += tok.Len()
	}

	return pos, nil
}

func sideToMove(c byte) leiser.Colour {
	if c == 'B' || c == 'b' {
		return leiser.Black
	}
	return leiser.White
}

func parseError(text string, cursor int, tok Token, reason string) error {
	err := errors.ErrUnparseable
	if reason != "" {
		err = errors.Wrap(errors.ErrUnparseable, reason)
	}
	return &errors.ParseError{
		Err:    err,
		Input:  text,
		Column: cursor + 1,
		Got:    tok.Text,
	}
}

// EncodeBoard writes board notation: eight rows joined by '/', empty runs
// as digits, no side-to-move marker. Squares holding a piece without a token
// are an error; run ValidateBoard first to rule that out.
func EncodeBoard(board *leiser.Board) (string, error) {
	var sb strings.Builder
	for rank := 0; rank < leiser.BoardSize; rank++ {
		if rank > 0 {
			sb.WriteByte(RowSeparator)
		}
		if err := writeRow(&sb, board, rank); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// EncodePosition writes board notation followed by a space and the side to
// move marker, W or B. Decode reads it back.
func EncodePosition(board *leiser.Board, toMove leiser.Colour) (string, error) {
	text, err := EncodeBoard(board)
	if err != nil {
		return "", err
	}
	if toMove == leiser.Black {
		return text + " B", nil
	}
	return text + " W", nil
}

// writeRow writes one rank of the board to the builder.
func writeRow(sb *strings.Builder, board *leiser.Board, rank int) error {
	emptyCount := 0
	for file := 0; file < leiser.BoardSize; file++ {
		piece := board.Squares[rank][file]
		if piece.IsEmpty() {
			emptyCount++
			continue
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
			emptyCount = 0
		}
		tok, err := EncodePiece(piece)
		if err != nil {
			return fmt.Errorf("square %v: %w", leiser.Location{File: file, Rank: rank}, err)
		}
		sb.WriteString(tok)
	}
	if emptyCount > 0 {
		sb.WriteByte(byte('0' + emptyCount))
	}
	return nil
}

// NewOpeningBoard returns the standard starting board.
func NewOpeningBoard() *leiser.Board {
	board, _ := DecodeBoard(OpeningPosition)
	return board
}
