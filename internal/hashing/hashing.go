// Package hashing provides Zobrist position hashing and repetition tracking
// for LeiserChess boards.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/leiserchess-go/internal/leiser"
)

const (
	numSquares = leiser.BoardSize * leiser.BoardSize
	numColours = 2
	numKinds   = 3 // NoKind, Pawn, Monarch
	numFacings = 9 // NoDirection plus eight directions
	numPieces  = numColours * numKinds * numFacings

	// zobristSeed fixes the key table so hashes are stable across runs.
	zobristSeed = 0x4c656973
)

var (
	pieceKeys [numSquares][numPieces]uint64
	// blackToMoveKey is mixed in when Black is on move.
	blackToMoveKey uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = rng.Uint64()
		}
	}
	blackToMoveKey = rng.Uint64()
}

// pieceIndex maps a piece to its key column. Out-of-range fields are folded
// into the table so a corrupt board still hashes without panicking.
func pieceIndex(p leiser.Piece) int {
	colour := int(p.Colour) % numColours
	kind := int(p.Kind) % numKinds
	facing := int(p.Direction) % numFacings
	if colour < 0 || kind < 0 || facing < 0 {
		return 0
	}
	return (colour*numKinds+kind)*numFacings + facing
}

// GenerateZobristHash computes the Zobrist hash of the pieces on board.
func GenerateZobristHash(board *leiser.Board) uint64 {
	var hash uint64
	for rank := 0; rank < leiser.BoardSize; rank++ {
		for file := 0; file < leiser.BoardSize; file++ {
			p := board.Squares[rank][file]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[rank*leiser.BoardSize+file][pieceIndex(p)]
		}
	}
	return hash
}

// PositionHash hashes the board together with the side to move.
func PositionHash(board *leiser.Board, toMove leiser.Colour) uint64 {
	hash := GenerateZobristHash(board)
	if toMove == leiser.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// RepetitionTable counts how often each position has occurred.
type RepetitionTable struct {
	// counts maps position hash to occurrences
	counts map[uint64]int
	// repeatCount tracks records of an already seen position
	repeatCount int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Record adds an occurrence of hash and returns its new count.
func (r *RepetitionTable) Record(hash uint64) int {
	r.counts[hash]++
	n := r.counts[hash]
	if n > 1 {
		r.repeatCount++
	}
	return n
}

// Forget removes one occurrence of hash. It undoes the matching Record.
func (r *RepetitionTable) Forget(hash uint64) {
	n, ok := r.counts[hash]
	if !ok {
		return
	}
	if n > 1 {
		r.repeatCount--
	}
	if n == 1 {
		delete(r.counts, hash)
		return
	}
	r.counts[hash] = n - 1
}

// Count returns the number of occurrences of hash.
func (r *RepetitionTable) Count(hash uint64) int {
	return r.counts[hash]
}

// RepeatCount returns the number of records that hit an already seen position.
func (r *RepetitionTable) RepeatCount() int {
	return r.repeatCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.repeatCount = 0
}
