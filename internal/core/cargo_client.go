package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/featsweep/featsweep/internal/types"
)

// CargoClient is the boundary to the external cargo toolchain: the
// metadata provider on one side, the verification subcommand on the
// other. Both are opaque processes; ctx cancellation must terminate
// them so an interrupted sweep leaves no orphaned children.
type CargoClient interface {
	// Metadata returns the raw JSON from a single non-recursive
	// `<tool> metadata` invocation.
	Metadata(ctx context.Context) ([]byte, error)
	// Verify runs one verification invocation synchronously. With a nil
	// output the child inherits the caller's standard streams so its
	// diagnostics appear in real time; otherwise stdout and stderr are
	// both written to output. The returned error carries the child's
	// exit status (see ExitCodeFromError).
	Verify(ctx context.Context, inv types.Invocation, output io.Writer) error
}

// SystemCargoClient implements CargoClient using the system toolchain
type SystemCargoClient struct {
	tool    string
	verbose bool
}

// NewSystemCargoClient creates a client for the given tool binary
// ("cargo" unless the config overrides it).
func NewSystemCargoClient(tool string, verbose bool) *SystemCargoClient {
	return &SystemCargoClient{tool: tool, verbose: verbose}
}

// Metadata runs `<tool> metadata --format-version 1 --no-deps` and
// returns its stdout. Stderr is captured separately and folded into the
// error so a toolchain failure is diagnosable without polluting the
// JSON stream.
func (c *SystemCargoClient) Metadata(ctx context.Context) ([]byte, error) {
	argv := []string{c.tool, MetadataSubcommand, "--format-version", MetadataFormatVersion, "--no-deps"}
	if c.verbose {
		fmt.Fprintf(os.Stderr, "featsweep: exec %s\n", strings.Join(argv, " "))
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s metadata: %w: %s", c.tool, err, msg)
		}
		return nil, fmt.Errorf("%s metadata: %w", c.tool, err)
	}
	return stdout.Bytes(), nil
}

// Verify executes the invocation, blocking until the child exits. The
// context's cancel function kills the child process (CommandContext),
// which is the only cleanup an aborted sweep needs.
func (c *SystemCargoClient) Verify(ctx context.Context, inv types.Invocation, output io.Writer) error {
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	if output != nil {
		cmd.Stdout = output
		cmd.Stderr = output
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// IsToolInstalled reports whether the verification tool is on PATH.
func IsToolInstalled(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// ExitCodeFromError extracts the child's exit code from a Verify error.
// Any error exposing ExitCode() int qualifies (*exec.ExitError does).
// Errors that never reached the exec stage (tool missing, ctx canceled
// before start) map to -1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}
