package notation

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

// tokenPieces maps the 16 two-character piece tokens to pieces.
// Uppercase is White, lowercase is Black.
var tokenPieces = map[string]leiser.Piece{
	"NN": {Colour: leiser.White, Kind: leiser.Monarch, Direction: leiser.North},
	"EE": {Colour: leiser.White, Kind: leiser.Monarch, Direction: leiser.East},
	"SS": {Colour: leiser.White, Kind: leiser.Monarch, Direction: leiser.South},
	"WW": {Colour: leiser.White, Kind: leiser.Monarch, Direction: leiser.West},
	"NE": {Colour: leiser.White, Kind: leiser.Pawn, Direction: leiser.NorthEast},
	"SE": {Colour: leiser.White, Kind: leiser.Pawn, Direction: leiser.SouthEast},
	"SW": {Colour: leiser.White, Kind: leiser.Pawn, Direction: leiser.SouthWest},
	"NW": {Colour: leiser.White, Kind: leiser.Pawn, Direction: leiser.NorthWest},
	"nn": {Colour: leiser.Black, Kind: leiser.Monarch, Direction: leiser.North},
	"ee": {Colour: leiser.Black, Kind: leiser.Monarch, Direction: leiser.East},
	"ss": {Colour: leiser.Black, Kind: leiser.Monarch, Direction: leiser.South},
	"ww": {Colour: leiser.Black, Kind: leiser.Monarch, Direction: leiser.West},
	"ne": {Colour: leiser.Black, Kind: leiser.Pawn, Direction: leiser.NorthEast},
	"se": {Colour: leiser.Black, Kind: leiser.Pawn, Direction: leiser.SouthEast},
	"sw": {Colour: leiser.Black, Kind: leiser.Pawn, Direction: leiser.SouthWest},
	"nw": {Colour: leiser.Black, Kind: leiser.Pawn, Direction: leiser.NorthWest},
}

// pieceTokens is the inverse of tokenPieces.
var pieceTokens = func() map[leiser.Piece]string {
	m := make(map[leiser.Piece]string, len(tokenPieces))
	for tok, p := range tokenPieces {
		m[p] = tok
	}
	return m
}()

// PieceTokens returns the 16 valid piece tokens.
func PieceTokens() []string {
	tokens := make([]string, 0, len(tokenPieces))
	for _, d := range leiser.Directions {
		for _, colour := range []leiser.Colour{leiser.White, leiser.Black} {
			kind := leiser.Pawn
			if d.Class() == leiser.Orthogonal {
				kind = leiser.Monarch
			}
			tokens = append(tokens, pieceTokens[leiser.Piece{Colour: colour, Kind: kind, Direction: d}])
		}
	}
	return tokens
}

// DecodePiece converts a two-character token such as "NE" or "ss" to a piece.
func DecodePiece(token string) (leiser.Piece, error) {
	p, ok := tokenPieces[token]
	if !ok {
		return leiser.Piece{}, fmt.Errorf("piece token %q: %w", token, errors.ErrInvalidPiece)
	}
	return p, nil
}

// EncodePiece returns the token for p. Pieces breaking the pairing rule have
// no token.
func EncodePiece(p leiser.Piece) (string, error) {
	tok, ok := pieceTokens[p]
	if !ok {
		return "", fmt.Errorf("no token for %v: %w", p, errors.ErrInvalidPiece)
	}
	return tok, nil
}
