// Package notation provides the LeiserChess text formats: the FEN-like board
// notation and the encode-only move notation.
package notation

// TokenType represents the type of a board notation token.
type TokenType int

const (
	PieceToken TokenType = iota
	EmptyRunToken
	RowSeparatorToken
	WhitespaceToken
	SideToMoveToken
	EOFToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	PieceToken:        "PIECE",
	EmptyRunToken:     "EMPTY_RUN",
	RowSeparatorToken: "ROW_SEPARATOR",
	WhitespaceToken:   "WHITESPACE",
	SideToMoveToken:   "SIDE_TO_MOVE",
	EOFToken:          "EOF",
	ErrorToken:        "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// RowSeparator separates board rows.
const RowSeparator = '/'

// Token is one lexeme of board notation.
type Token struct {
	Type  TokenType
	Text  string // The matched input
	Value int    // Run length for EmptyRunToken
}

// Len returns the number of bytes the token consumed.
func (t Token) Len() int {
	return len(t.Text)
}

// Scan returns the token starting at input[pos]. Candidates are tried in a
// fixed priority: piece, empty run, row separator, whitespace, side to move.
// When none matches an ErrorToken holding the offending byte is returned; it
// is the caller's job to stop. Past the end of input Scan returns EOFToken.
func Scan(input string, pos int) Token {
	if pos >= len(input) {
		return Token{Type: EOFToken}
	}
	rest := input[pos:]

	if len(rest) >= 2 {
		if _, ok := tokenPieces[rest[:2]]; ok {
			return Token{Type: PieceToken, Text: rest[:2]}
		}
	}

	c := rest[0]
	switch {
	case c >= '0' && c <= '9':
		return Token{Type: EmptyRunToken, Text: rest[:1], Value: int(c - '0')}
	case c == RowSeparator:
		return Token{Type: RowSeparatorToken, Text: rest[:1]}
	case isSpace(c):
		end := 1
		for end < len(rest) && isSpace(rest[end]) {
			end++
		}
		return Token{Type: WhitespaceToken, Text: rest[:end]}
	case c == 'W' || c == 'B' || c == 'w' || c == 'b':
		return Token{Type: SideToMoveToken, Text: rest[:1]}
	}
	return Token{Type: ErrorToken, Text: rest[:1]}
}

// isSpace reports whether c is ASCII whitespace. Other bytes, including the
// Latin-1 spaces 0x85 and 0xA0, are not notation.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
