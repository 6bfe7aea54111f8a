package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/featsweep/featsweep/internal/types"
)

// FlagSource resolves the ordered flag group for a package. The cargo
// metadata resolver is the normal implementation; the manifest resolver
// covers offline runs. Both preserve provider ordering.
type FlagSource interface {
	Resolve(ctx context.Context, pkgName, group string) (types.FlagGroup, error)
}

// Compile-time interface satisfaction checks.
var (
	_ FlagSource = (*FlagResolver)(nil)
	_ FlagSource = (*ManifestResolver)(nil)
)

// FlagResolver extracts a feature-flag group from `cargo metadata`
// output. The provider is queried exactly once per Resolve call; the
// result is not cached across runs.
type FlagResolver struct {
	client CargoClient
}

// NewFlagResolver creates a resolver over the given cargo client.
func NewFlagResolver(client CargoClient) *FlagResolver {
	return &FlagResolver{client: client}
}

// Resolve queries the metadata provider, locates pkgName, and returns
// the flags under the group key in provider order.
//
// Failure taxonomy, in evaluation order:
//   - ErrMetadataUnavailable: the provider invocation failed or its
//     output did not parse. Nothing else is attempted.
//   - ErrPackageNotFound: no package matched pkgName. Absence is a hard
//     error; resolving to some other package would hide a config typo.
//   - ErrGroupNotFound: the package exists but lacks the group key.
func (r *FlagResolver) Resolve(ctx context.Context, pkgName, group string) (types.FlagGroup, error) {
	raw, err := r.client.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	var meta types.CargoMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: unparseable metadata: %v", ErrMetadataUnavailable, err)
	}

	pkg := FindPackage(meta.Packages, pkgName)
	if pkg == nil {
		return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, pkgName)
	}

	flags, ok := pkg.Features[group]
	if !ok {
		return nil, fmt.Errorf("%w: package %q has no feature group %q", ErrGroupNotFound, pkgName, group)
	}

	return types.FlagGroup(flags), nil
}
