package core

import (
	"fmt"

	"github.com/featsweep/featsweep/internal/types"
)

// FindPackage returns the first package with matching name, or nil if
// not found. First match is the expected-only match: cargo rejects
// duplicate package names within one workspace.
func FindPackage(packages []types.PackageDescriptor, name string) *types.PackageDescriptor {
	for i := range packages {
		if packages[i].Name == name {
			return &packages[i]
		}
	}
	return nil
}

// Pluralize returns the singular or plural form based on count.
// Examples:
//
//	Pluralize(1, "flag", "flags") => "1 flag"
//	Pluralize(2, "flag", "flags") => "2 flags"
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
