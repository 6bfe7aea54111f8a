package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNotInitialized indicates there is no featsweep.yml in the working directory
	ErrNotInitialized = errors.New("featsweep.yml not found. Run 'featsweep init' first")

	// ErrMetadataUnavailable indicates the metadata provider invocation itself
	// failed or produced unparseable output. Raised before any package or
	// group lookup is attempted.
	ErrMetadataUnavailable = errors.New("package metadata unavailable")

	// ErrPackageNotFound indicates no package in the metadata matched the
	// configured name. Usually a naming typo in featsweep.yml.
	ErrPackageNotFound = errors.New("package not found in metadata")

	// ErrGroupNotFound indicates the package exists but the feature-group key
	// is absent. Distinct from ErrPackageNotFound because it usually means the
	// package's feature declarations changed, not that the name is wrong.
	ErrGroupNotFound = errors.New("feature group not found")
)

// FlagFailureError reports the first failing invocation of a sweep. The
// runner stops at the first failure, so at most one of these exists per run.
type FlagFailureError struct {
	Flag     string // flag under test when the tool failed
	Index    int    // 0-based position in the flag group
	ExitCode int    // the verification tool's exit code
}

func (e *FlagFailureError) Error() string {
	return fmt.Sprintf("feature %q failed verification (exit code %d)", e.Flag, e.ExitCode)
}

// ExitCodeOf returns the process exit code a sweep error maps to: the
// failing tool's own exit code for flag failures, 1 for everything else.
func ExitCodeOf(err error) int {
	var ff *FlagFailureError
	if errors.As(err, &ff) && ff.ExitCode != 0 {
		return ff.ExitCode
	}
	return 1
}
