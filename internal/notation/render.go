package notation

import (
	"strings"

	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// Render lays the board out one row per line, with " ." for each empty
// square and piece tokens written as-is. Invalid boards are refused.
func Render(board *leiser.Board) (string, error) {
	if err := board.ValidateBoard(); err != nil {
		return "", err
	}
	text, err := EncodeBoard(board)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == RowSeparator:
			sb.WriteByte('\n')
		case c >= '0' && c <= '9':
			sb.WriteString(strings.Repeat(" .", int(c-'0')))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}
