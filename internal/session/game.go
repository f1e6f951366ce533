// Package session tracks LeiserChess games in play: the current board, the
// side to move, the applied actions and the board history.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/leiserchess-go/internal/config"
	"github.com/lgbarn/leiserchess-go/internal/engine"
	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/hashing"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
	"github.com/lgbarn/leiserchess-go/internal/logging"
	"github.com/lgbarn/leiserchess-go/internal/notation"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for session events. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is one game session. A Game is not safe for concurrent use; Manager
// hands each one to a single owner.
type Game struct {
	id     string
	cfg    config.SessionConfig
	logger *zap.Logger

	board  *leiser.Board
	toMove leiser.Colour

	// history[0] is the starting board; history[i] is the board after actions[i-1].
	history   []*leiser.Board
	actions   []engine.StandardAction
	moveTexts []string

	// repetitions is nil when repetition tracking is off.
	repetitions *hashing.RepetitionTable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New starts a session from board with White to move. The board must pass
// ValidateBoard; the session keeps its own copy.
func New(cfg config.SessionConfig, board *leiser.Board, opts ...Option) (*Game, error) {
	return newGame(cfg, board, leiser.White, opts)
}

// NewFromText starts a session from board notation. A trailing side marker
// sets the side to move; without one White moves first.
func NewFromText(cfg config.SessionConfig, text string, opts ...Option) (*Game, error) {
	pos, err := notation.Decode(text)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, pos.Board, pos.ToMove, opts)
}

func newGame(cfg config.SessionConfig, board *leiser.Board, toMove leiser.Colour, opts []Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.Wrap(errors.ErrInvalidBoard, "nil board")
	}
	if err := board.ValidateBoard(); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &Game{
		id:        uuid.NewString(),
		cfg:       cfg,
		logger:    zap.NewNop(),
		board:     board.Copy(),
		toMove:    toMove,
		history:   []*leiser.Board{board.Copy()},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String(logging.SessionKey, g.id))

	if cfg.TrackRepetitions {
		g.repetitions = hashing.NewRepetitionTable()
		g.repetitions.Record(hashing.PositionHash(g.board, g.toMove))
	}

	if text, err := notation.EncodePosition(g.board, g.toMove); err == nil {
		g.logger.Info("session created", zap.String(logging.BoardKey, text))
	}
	return g, nil
}

// ID returns the session identifier.
func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() *leiser.Board {
	return g.board.Copy()
}

// ToMove returns the side to move.
func (g *Game) ToMove() leiser.Colour {
	return g.toMove
}

// Ply returns the number of actions applied.
func (g *Game) Ply() int {
	return len(g.actions)
}

// Text returns the current position in board notation with its side marker.
func (g *Game) Text() (string, error) {
	return notation.EncodePosition(g.board, g.toMove)
}

// History returns copies of every board of the session, starting board first.
func (g *Game) History() []*leiser.Board {
	boards := make([]*leiser.Board, len(g.history))
	for i, b := range g.history {
		boards[i] = b.Copy()
	}
	return boards
}

// Actions returns the applied actions in order.
func (g *Game) Actions() []engine.StandardAction {
	return append([]engine.StandardAction(nil), g.actions...)
}

// MoveTexts returns the move notation of the applied actions in order.
func (g *Game) MoveTexts() []string {
	return append([]string(nil), g.moveTexts...)
}

// Repetitions returns how often the current position, side to move
// included, has occurred. It is 0 when repetition tracking is off.
func (g *Game) Repetitions() int {
	if g.repetitions == nil {
		return 0
	}
	return g.repetitions.Count(hashing.PositionHash(g.board, g.toMove))
}

// LegalActions returns every legal action of the side to move.
func (g *Game) LegalActions() []engine.StandardAction {
	return engine.GenerateAll(g.board, g.toMove)
}

// Apply plays action and returns its move notation. Nothing changes when
// an error is returned.
func (g *Game) Apply(action engine.StandardAction) (string, error) {
	text, err := g.apply(action)
	if err != nil {
		g.logger.Debug("action rejected",
			zap.Stringer("action", action),
			zap.Error(err))
		return "", err
	}
	g.logger.Info("action applied",
		zap.String(logging.MoveKey, text),
		zap.Int(logging.PlyKey, len(g.actions)),
		zap.Stringer(logging.SideKey, g.toMove))
	return text, nil
}

func (g *Game) apply(action engine.StandardAction) (string, error) {
	if g.cfg.EnforceTurnOrder && action.Piece.Colour != g.toMove {
		return "", fmt.Errorf("%v piece with %v to move: %w",
			action.Piece.Colour, g.toMove, errors.ErrWrongTurn)
	}
	if len(g.history) >= g.cfg.HistoryCapacity {
		return "", fmt.Errorf("%d boards: %w", len(g.history), errors.ErrHistoryFull)
	}
	if len(g.actions) >= g.cfg.ActionCapacity {
		return "", fmt.Errorf("%d actions: %w", len(g.actions), errors.ErrActionLimit)
	}

	occupant, err := g.board.Get(action.Source)
	if err != nil {
		return "", errors.Wrap(err, "source")
	}
	if occupant != action.Piece {
		return "", fmt.Errorf("%v holds %v, not %v: %w",
			action.Source, occupant, action.Piece, errors.ErrSourceMismatch)
	}

	next := g.board.Copy()
	if err := action.Apply(next); err != nil {
		return "", err
	}
	if err := next.ValidateBoard(); err != nil {
		return "", err
	}
	text, err := notation.EncodeMove(action)
	if err != nil {
		return "", err
	}

	g.board = next
	g.toMove = g.toMove.Opposite()
	g.history = append(g.history, next.Copy())
	g.actions = append(g.actions, action)
	g.moveTexts = append(g.moveTexts, text)
	if g.repetitions != nil {
		g.repetitions.Record(hashing.PositionHash(g.board, g.toMove))
	}
	g.UpdatedAt = time.Now()
	return text, nil
}

// Undo takes back the last action.
func (g *Game) Undo() error {
	if len(g.actions) == 0 {
		return errors.ErrNothingToUndo
	}
	if g.repetitions != nil {
		g.repetitions.Forget(hashing.PositionHash(g.board, g.toMove))
	}

	last := len(g.actions) - 1
	text := g.moveTexts[last]
	g.actions = g.actions[:last]
	g.moveTexts = g.moveTexts[:last]
	g.history = g.history[:len(g.history)-1]
	g.board = g.history[len(g.history)-1].Copy()
	g.toMove = g.toMove.Opposite()
	g.UpdatedAt = time.Now()

	g.logger.Info("action undone",
		zap.String(logging.MoveKey, text),
		zap.Int(logging.PlyKey, len(g.actions)))
	return nil
}
