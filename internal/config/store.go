package config

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "STRINGMOD_CONFIG"

// fileName is the config file name inside the user config directory.
const fileName = "stringmod.cfg"

// DefaultPath returns $STRINGMOD_CONFIG when set, otherwise
// stringmod/stringmod.cfg under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "stringmod", fileName)
}

// Store reads and writes the configuration at a fixed path.
type Store struct {
	path   string
	logger *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a store for path. An empty path means DefaultPath().
func NewStore(path string, opts ...StoreOption) *Store {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{
		path:   path,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration. created is true when the file did not exist
// and the defaults were just written.
func (s *Store) Load() (cfg *Config, created bool, err error) {
	cfg, created, err = load(s.path)
	if err != nil {
		s.logger.Warn("config load failed", zap.String("path", s.path), zap.Error(err))
		return nil, false, err
	}
	if created {
		s.logger.Info("config created with defaults", zap.String("path", s.path))
	} else {
		s.logger.Debug("config loaded", zap.String("path", s.path))
	}
	return cfg, created, nil
}

// Save writes cfg to the store's path.
func (s *Store) Save(cfg *Config) error {
	if err := Save(s.path, cfg); err != nil {
		s.logger.Warn("config save failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.logger.Debug("config saved", zap.String("path", s.path))
	return nil
}

// Reset overwrites the file with the defaults.
func (s *Store) Reset() (*Config, error) {
	cfg := Default()
	if err := s.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
