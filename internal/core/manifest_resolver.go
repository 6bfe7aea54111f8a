package core

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/featsweep/featsweep/internal/types"
)

// ManifestResolver resolves a flag group straight from Cargo.toml,
// without invoking the toolchain. Used by --offline runs: the manifest
// declares the same [features] table that `cargo metadata` reports, and
// reading it needs no working toolchain or network.
//
// Limitation relative to FlagResolver: a manifest describes one package,
// so a workspace sweep still needs the metadata provider. The package
// name is checked against [package].name to keep the same hard-error
// behavior on mismatches.
type ManifestResolver struct {
	path string
}

// NewManifestResolver creates a resolver reading the manifest at path.
func NewManifestResolver(path string) *ManifestResolver {
	return &ManifestResolver{path: path}
}

// Resolve parses the manifest and extracts the group, with the same
// error taxonomy as the metadata resolver: an unreadable or unparseable
// manifest is ErrMetadataUnavailable, a name mismatch is
// ErrPackageNotFound, a missing [features] key is ErrGroupNotFound.
func (r *ManifestResolver) Resolve(_ context.Context, pkgName, group string) (types.FlagGroup, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	var manifest types.CargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: unparseable manifest %s: %v", ErrMetadataUnavailable, r.path, err)
	}

	if manifest.Package.Name != pkgName {
		return nil, fmt.Errorf("%w: %q (manifest %s declares %q)", ErrPackageNotFound, pkgName, r.path, manifest.Package.Name)
	}

	flags, ok := manifest.Features[group]
	if !ok {
		return nil, fmt.Errorf("%w: package %q has no feature group %q", ErrGroupNotFound, pkgName, group)
	}

	return types.FlagGroup(flags), nil
}

// DetectPackageName reads [package].name from the manifest at path.
// Returns "" when the manifest is missing or unparseable; init uses this
// as a best-effort default, never a hard requirement.
func DetectPackageName(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var manifest types.CargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Package.Name
}
