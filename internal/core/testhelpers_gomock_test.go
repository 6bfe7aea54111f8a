package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/featsweep/featsweep/internal/types"
)

// ============================================================================
// Gomock Test Helpers
// ============================================================================

// setupMocks creates all mock dependencies with gomock
func setupMocks(t *testing.T) (
	*gomock.Controller,
	*MockCargoClient,
	*MockConfigStore,
	*MockUICallback,
) {
	ctrl := gomock.NewController(t)

	client := NewMockCargoClient(ctrl)
	config := NewMockConfigStore(ctrl)
	ui := NewMockUICallback(ctrl)

	return ctrl, client, config, ui
}

// ============================================================================
// Fixtures
// ============================================================================

// createTestConfig creates a minimal valid sweep config
func createTestConfig() types.SweepConfig {
	return types.SweepConfig{
		Package:    "mundy",
		Group:      "_all-preferences",
		Baseline:   []string{"async-io"},
		Tool:       "cargo",
		Subcommand: "clippy",
		Manifest:   "Cargo.toml",
	}
}

// metadataJSON renders a cargo metadata document with the given feature table
func metadataJSON(pkgName string, features map[string][]string) []byte {
	var groups []string
	for name, flags := range features {
		quoted := make([]string, len(flags))
		for i, f := range flags {
			quoted[i] = fmt.Sprintf("%q", f)
		}
		groups = append(groups, fmt.Sprintf("%q: [%s]", name, strings.Join(quoted, ", ")))
	}
	return []byte(fmt.Sprintf(`{"packages": [{"name": %q, "features": {%s}}]}`, pkgName, strings.Join(groups, ", ")))
}

// ============================================================================
// Assertion Helpers
// ============================================================================

// assertNoError is a test helper for checking errors
func assertNoError(t interface{ Fatalf(string, ...interface{}) }, err error, msg string) {
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// assertError is a test helper for expecting errors
func assertError(t interface{ Errorf(string, ...interface{}) }, err error, msg string) {
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// assertContains checks if a string contains a substring
func assertContains(t interface{ Errorf(string, ...interface{}) }, s, substr, msg string) {
	if !strings.Contains(s, substr) {
		t.Errorf("%s: expected %q to contain %q", msg, s, substr)
	}
}

// assertEqual checks if two values are equal
func assertEqual(t interface{ Errorf(string, ...interface{}) }, got, want interface{}, msg string) {
	if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}
