package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lgbarn/leiserchess-go/internal/config"
	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/leiser"
	"github.com/lgbarn/leiserchess-go/internal/logging"
	"github.com/lgbarn/leiserchess-go/internal/notation"
)

// Manager keeps the open sessions by ID. It is safe for concurrent use;
// the Games it hands out are not.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	cfg    config.SessionConfig
	logger *zap.Logger
}

// NewManager creates a manager whose sessions use cfg and log to logger.
// A nil logger discards session events.
func NewManager(cfg config.SessionConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games:  make(map[string]*Game),
		cfg:    cfg,
		logger: logger,
	}
}

// NewManagerFromConfig validates cfg, builds the session logger from its log
// section and returns a manager whose sessions use its session section.
func NewManagerFromConfig(cfg *config.Config) (*Manager, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return NewManager(cfg.Session, logger), nil
}

// LoadManager reads a YAML configuration file and builds a manager from it.
func LoadManager(path string) (*Manager, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewManagerFromConfig(cfg)
}

// Sync flushes buffered log entries.
func (m *Manager) Sync() error {
	return m.logger.Sync()
}

// NewGame starts a session from board, or from the opening position when
// board is nil.
func (m *Manager) NewGame(board *leiser.Board) (*Game, error) {
	if board == nil {
		board = notation.NewOpeningBoard()
	}
	g, err := New(m.cfg, board, WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	m.add(g)
	return g, nil
}

// NewGameFromText starts a session from board notation.
func (m *Manager) NewGameFromText(text string) (*Game, error) {
	g, err := NewFromText(m.cfg, text, WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	m.add(g)
	return g, nil
}

func (m *Manager) add(g *Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID()] = g
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, errors.ErrSessionNotFound)
	}
	return g, nil
}

// Remove closes the session with the given ID.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%q: %w", id, errors.ErrSessionNotFound)
	}
	delete(m.games, id)
	m.logger.Info("session removed", zap.String(logging.SessionKey, id))
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// IDs returns the open session IDs in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := lo.Keys(m.games)
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids
}
