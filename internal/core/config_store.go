package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/featsweep/featsweep/internal/types"
)

// ConfigStore handles featsweep.yml I/O operations
type ConfigStore interface {
	Load() (types.SweepConfig, error)
	Save(cfg types.SweepConfig) error
	Path() string
}

// configValidator is shared across loads; validator instances cache
// struct metadata and are safe for concurrent use.
var configValidator = validator.New()

// FileConfigStore implements ConfigStore using the filesystem
type FileConfigStore struct {
	store *YAMLStore[types.SweepConfig]
}

// NewFileConfigStore creates a ConfigStore reading featsweep.yml from rootDir.
func NewFileConfigStore(rootDir string) *FileConfigStore {
	return &FileConfigStore{
		store: NewYAMLStore[types.SweepConfig](rootDir, ConfigName, false),
	}
}

// Path returns the config file path
func (s *FileConfigStore) Path() string {
	return s.store.Path()
}

// Load reads featsweep.yml, applies defaults, and validates the result.
// A missing file maps to ErrNotInitialized: the package name has no
// sensible default, so absence is a hard error rather than a fallback.
func (s *FileConfigStore) Load() (types.SweepConfig, error) {
	cfg, err := s.store.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.SweepConfig{}, ErrNotInitialized
		}
		return types.SweepConfig{}, err
	}

	ApplyDefaults(&cfg)

	if err := configValidator.Struct(cfg); err != nil {
		return types.SweepConfig{}, fmt.Errorf("invalid %s: %w", ConfigName, err)
	}

	return cfg, nil
}

// Save writes featsweep.yml
func (s *FileConfigStore) Save(cfg types.SweepConfig) error {
	return s.store.Save(cfg)
}

// ApplyDefaults fills the optional config fields with their defaults.
// The package name is deliberately not defaulted.
func ApplyDefaults(cfg *types.SweepConfig) {
	if cfg.Group == "" {
		cfg.Group = DefaultGroup
	}
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	if cfg.Subcommand == "" {
		cfg.Subcommand = DefaultSubcommand
	}
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifest
	}
}

// IsInitialized reports whether a featsweep.yml exists in the current directory.
func IsInitialized() bool {
	_, err := os.Stat(ConfigName)
	return err == nil
}
