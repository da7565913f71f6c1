package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AlexGronaCW/tickwork/internal/logging"
	"github.com/AlexGronaCW/tickwork/pkg/adapters/memory"
	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// Manager is one collaborator instance. Calls are synchronous and may block
// on I/O (file reads, token store round-trips); run them through the latent
// wrappers when calling from a tick-driven host.
//
// A Manager is safe for concurrent use: worker goroutines of several
// in-flight operations may share one instance.
type Manager struct {
	mu       sync.Mutex
	released bool

	game        GameInfo
	environment string
	features    map[domain.Feature]FeatureSettings

	tokens ports.TokenStore
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithTokenStore overrides the default in-memory token persistence.
func WithTokenStore(store ports.TokenStore) Option {
	return func(m *Manager) {
		m.tokens = store
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a collaborator instance. configPath may be empty: settings can
// be loaded later with ReloadConfigFile or ReloadConfigContents, and
// AreSettingsLoaded reports false for every feature until then.
func New(configPath string, opts ...Option) (*Manager, error) {
	m := &Manager{
		features: make(map[domain.Feature]FeatureSettings),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tokens == nil {
		m.tokens = memory.NewTokenStore()
	}

	if configPath != "" {
		if err := m.ReloadConfigFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load client config: %w", err)
		}
	}

	return m, nil
}

// Close releases the instance. Subsequent calls on it fail with
// domain.ErrInstanceReleased.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.released {
		return domain.ErrInstanceReleased
	}
	m.released = true
	m.features = nil
	return nil
}

// AreSettingsLoaded reports whether settings for the feature are loaded.
// Settings load via New, ReloadConfigFile, or ReloadConfigContents; a
// feature that was never deployed has no section and reports false.
func (m *Manager) AreSettingsLoaded(feature domain.Feature) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.released {
		return false
	}
	_, ok := m.features[feature]
	return ok
}

// Settings returns the loaded settings for a feature.
func (m *Manager) Settings(feature domain.Feature) (FeatureSettings, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.features[feature]
	return s, ok
}

// Features lists the features with loaded settings.
func (m *Manager) Features() []domain.Feature {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Feature, 0, len(m.features))
	for f := range m.features {
		out = append(out, f)
	}
	return out
}

// ReloadConfigFile replaces any loaded client settings with settings from
// the given config file.
func (m *Manager) ReloadConfigFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return m.apply(cfg)
}

// ReloadConfigContents replaces any loaded client settings with settings
// parsed from raw config contents.
func (m *Manager) ReloadConfigContents(contents []byte) error {
	cfg, err := ParseConfig(contents)
	if err != nil {
		return err
	}
	return m.apply(cfg)
}

func (m *Manager) apply(cfg *ClientConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.released {
		return domain.ErrInstanceReleased
	}

	m.game = cfg.Game
	m.environment = cfg.Environment
	m.features = cfg.Features

	m.logger.Debug("client config applied",
		"game", cfg.Game.Name,
		"environment", cfg.Environment,
		"features", len(cfg.Features),
	)
	return nil
}

// SetToken stores a token value, replacing any previous value of that type.
func (m *Manager) SetToken(ctx context.Context, tokenType domain.TokenType, value string) error {
	store, err := m.tokenStore()
	if err != nil {
		return err
	}
	if err := store.Save(ctx, tokenType, value); err != nil {
		return fmt.Errorf("failed to store %s token: %w", tokenType, err)
	}
	return nil
}

// Token retrieves a stored token value.
// Returns domain.ErrTokenNotFound if no value is stored for the type.
func (m *Manager) Token(ctx context.Context, tokenType domain.TokenType) (string, error) {
	store, err := m.tokenStore()
	if err != nil {
		return "", err
	}
	return store.Load(ctx, tokenType)
}

func (m *Manager) tokenStore() (ports.TokenStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.released {
		return nil, domain.ErrInstanceReleased
	}
	return m.tokens, nil
}

// statusFor classifies a collaborator error for the terminal commit.
func statusFor(err error) domain.StatusCode {
	switch {
	case err == nil:
		return domain.StatusSuccess
	case errors.Is(err, domain.ErrInstanceReleased):
		return domain.StatusInstanceReleased
	case errors.Is(err, ErrConfigRead):
		return domain.StatusConfigReadFailed
	case errors.Is(err, ErrConfigParse):
		return domain.StatusConfigParseFailed
	default:
		return domain.StatusCallFailed
	}
}
