package core

import (
	"context"

	"github.com/featsweep/featsweep/internal/types"
)

// Manager provides the main API for featsweep operations, wiring the
// config store, cargo client, and UI callback together. Commands in
// main.go talk to a Manager; services underneath stay independently
// testable.
type Manager struct {
	configStore ConfigStore
	ui          UICallback
}

// NewManager creates a Manager with default dependencies: a file config
// store in the working directory and a silent UI (main.go installs the
// real one per command).
func NewManager() *Manager {
	return &Manager{
		configStore: NewFileConfigStore("."),
		ui:          &SilentUICallback{},
	}
}

// NewManagerWithDeps creates a Manager with injected dependencies (useful for testing).
func NewManagerWithDeps(configStore ConfigStore, ui UICallback) *Manager {
	return &Manager{configStore: configStore, ui: ui}
}

// SetUICallback sets the UI callback for user interactions
func (m *Manager) SetUICallback(ui UICallback) {
	m.ui = ui
}

// ConfigPath returns the path to featsweep.yml
func (m *Manager) ConfigPath() string {
	return m.configStore.Path()
}

// GetConfig loads, defaults, and validates featsweep.yml.
func (m *Manager) GetConfig() (types.SweepConfig, error) {
	return m.configStore.Load()
}

// SaveConfig writes featsweep.yml.
func (m *Manager) SaveConfig(cfg types.SweepConfig) error {
	return m.configStore.Save(cfg)
}

// ResolveFlags resolves the configured flag group, from `cargo
// metadata` normally or straight from the manifest when offline.
func (m *Manager) ResolveFlags(ctx context.Context, cfg types.SweepConfig, offline bool) (types.FlagGroup, error) {
	var source FlagSource
	if offline {
		source = NewManifestResolver(cfg.Manifest)
	} else {
		source = NewFlagResolver(NewSystemCargoClient(cfg.Tool, Verbose))
	}
	return source.Resolve(ctx, cfg.Package, cfg.Group)
}

// Sweep runs the verification for every flag in the group, fail-fast.
func (m *Manager) Sweep(ctx context.Context, cfg types.SweepConfig, flags types.FlagGroup, opts SweepOptions) (*types.SweepResult, error) {
	runner := NewSweepRunner(NewSystemCargoClient(cfg.Tool, Verbose), m.ui)
	return runner.Run(ctx, cfg, flags, opts)
}
