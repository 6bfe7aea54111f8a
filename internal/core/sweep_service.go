package core

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/featsweep/featsweep/internal/types"
)

// SweepOptions carries per-run options for a sweep.
type SweepOptions struct {
	// Passthrough args are forwarded verbatim to every invocation,
	// after the config's extra_args.
	Passthrough []string
	// Quiet captures each child's output instead of inheriting stdio.
	// The captured output of a failing invocation is replayed so the
	// diagnostics are never lost.
	Quiet bool
	// Progress, when non-nil, is advanced once per completed flag.
	Progress ProgressTracker
}

// SweepRunner executes one verification invocation per flag, in order,
// failing fast on the first non-zero exit.
//
// There is deliberately no concurrency here: invocations are heavy
// external processes that contend for one build cache, and interleaved
// diagnostics would be unreadable. The only state between iterations is
// the read-only flag list.
type SweepRunner struct {
	client CargoClient
	ui     UICallback
}

// NewSweepRunner creates a runner over the given client and UI callback.
func NewSweepRunner(client CargoClient, ui UICallback) *SweepRunner {
	return &SweepRunner{client: client, ui: ui}
}

// Run sweeps the flag group. For each flag it constructs the
// invocation, echoes the quoted command line, and executes the tool
// synchronously. The first failure stops the run and is returned as a
// *FlagFailureError; the remaining flags are never constructed into
// invocations, let alone executed.
//
// An empty flag group is a valid vacuous pass: zero invocations, nil
// error. The returned result always describes exactly what ran.
func (r *SweepRunner) Run(ctx context.Context, cfg types.SweepConfig, flags types.FlagGroup, opts SweepOptions) (*types.SweepResult, error) {
	result := &types.SweepResult{
		RunID:    NewRunID(),
		Package:  cfg.Package,
		Group:    cfg.Group,
		Baseline: cfg.Baseline,
		Started:  time.Now().UTC(),
	}

	passthrough := append(append([]string{}, cfg.ExtraArgs...), opts.Passthrough...)

	for i, flag := range flags {
		if err := ctx.Err(); err != nil {
			result.Finished = time.Now().UTC()
			return result, err
		}

		inv := buildFlagInvocation(cfg, flag, passthrough)
		line := QuoteCommand(inv.Argv)
		r.ui.ShowCommand(line)

		var captured *bytes.Buffer
		var err error
		if opts.Quiet {
			captured = &bytes.Buffer{}
			err = r.client.Verify(ctx, inv, captured)
		} else {
			err = r.client.Verify(ctx, inv, nil)
		}

		outcome := types.FlagOutcome{
			Flag:     flag,
			Command:  line,
			ExitCode: ExitCodeFromError(err),
			Passed:   err == nil,
		}
		result.Outcomes = append(result.Outcomes, outcome)

		if err != nil {
			if captured != nil && captured.Len() > 0 {
				// The child's diagnostics were swallowed by quiet mode;
				// replay them now that they matter.
				fmt.Fprint(os.Stderr, captured.String())
			}
			failure := &FlagFailureError{Flag: flag, Index: i, ExitCode: outcome.ExitCode}
			if opts.Progress != nil {
				opts.Progress.Fail(failure)
			}
			result.Failed = &outcome
			result.Finished = time.Now().UTC()
			return result, failure
		}

		if opts.Progress != nil {
			opts.Progress.Increment(flag)
		}
	}

	if opts.Progress != nil {
		opts.Progress.Complete()
	}
	result.Finished = time.Now().UTC()
	return result, nil
}

// buildFlagInvocation is BuildInvocation with extra_args already folded
// into the passthrough slice, so the fold happens once per run instead
// of once per flag.
func buildFlagInvocation(cfg types.SweepConfig, flag string, passthrough []string) types.Invocation {
	stripped := cfg
	stripped.ExtraArgs = nil
	return BuildInvocation(stripped, flag, passthrough)
}
