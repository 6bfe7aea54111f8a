package types

import "time"

// SweepConfig is the featsweep.yml schema. Defaults are applied by the
// config store before validation, so the validate tags describe the
// post-default invariants rather than what the user must type.
type SweepConfig struct {
	// Package is the name of the cargo package whose feature group is swept.
	Package string `yaml:"package" validate:"required"`
	// Group is the feature-group key holding the flags to test individually.
	Group string `yaml:"group" validate:"required"`
	// Baseline lists the feature flags enabled in every invocation.
	Baseline []string `yaml:"baseline,omitempty"`
	// Tool and Subcommand form the verification command (default: cargo clippy).
	Tool       string `yaml:"tool,omitempty" validate:"required"`
	Subcommand string `yaml:"subcommand,omitempty" validate:"required"`
	// Manifest is the Cargo.toml path, used by offline resolution and watch mode.
	Manifest string `yaml:"manifest,omitempty" validate:"required"`
	// ExtraArgs are appended to every invocation before CLI passthrough args.
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// CargoMetadata is the subset of `cargo metadata --format-version 1`
// output this tool reads.
type CargoMetadata struct {
	Packages []PackageDescriptor `json:"packages"`
}

// PackageDescriptor describes one workspace package. Features maps a
// feature name to the features it enables; group keys live in the same
// namespace, so an absent group must be detected with a comma-ok lookup
// rather than a zero-value read.
type PackageDescriptor struct {
	Name     string              `json:"name"`
	Features map[string][]string `json:"features"`
}

// CargoManifest is the subset of Cargo.toml read in offline mode.
type CargoManifest struct {
	Package  ManifestPackage     `toml:"package"`
	Features map[string][]string `toml:"features"`
}

// ManifestPackage holds [package] fields from Cargo.toml.
type ManifestPackage struct {
	Name string `toml:"name"`
}

// FlagGroup is an ordered list of feature flags to test individually.
// The order is whatever the metadata provider returned and is preserved
// through the whole run for reproducible diagnostics.
type FlagGroup []string

// Invocation is one fully-formed verification command. Argv[0] is the
// tool path. Constructed fresh per flag and never mutated afterwards.
type Invocation struct {
	Argv []string
	Flag string // the flag under test, kept for failure reporting
}

// FlagOutcome records one executed invocation for JSON output.
type FlagOutcome struct {
	Flag     string `json:"flag"`
	Command  string `json:"command"`
	ExitCode int    `json:"exit_code"`
	Passed   bool   `json:"passed"`
}

// SweepResult is the JSON-mode report of a single run. It only records
// invocations that actually executed; a fail-fast stop leaves the
// remaining flags unlisted.
type SweepResult struct {
	RunID    string        `json:"run_id"`
	Package  string        `json:"package"`
	Group    string        `json:"group"`
	Baseline []string      `json:"baseline"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Outcomes []FlagOutcome `json:"outcomes"`
	Failed   *FlagOutcome  `json:"failed,omitempty"`
}
