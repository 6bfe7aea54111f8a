package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/featsweep/featsweep/internal/types"
)

// NewRunID returns a fresh identifier for one sweep run, used to
// correlate a JSON report with CI logs.
func NewRunID() string {
	return uuid.NewString()
}

// SweepJSONOutput renders a finished (or failed-fast) sweep as the
// structured JSON document emitted in --json mode.
func SweepJSONOutput(result *types.SweepResult, runErr error) JSONOutput {
	data := map[string]interface{}{
		"run_id":        result.RunID,
		"package":       result.Package,
		"group":         result.Group,
		"baseline":      result.Baseline,
		"started":       result.Started,
		"finished":      result.Finished,
		"flags_checked": len(result.Outcomes),
		"outcomes":      result.Outcomes,
	}

	if runErr == nil {
		return JSONOutput{
			Status:  "success",
			Message: fmt.Sprintf("%s passed", Pluralize(len(result.Outcomes), "flag combination", "flag combinations")),
			Data:    data,
		}
	}

	if result.Failed != nil {
		data["failed"] = result.Failed
	}
	return JSONOutput{
		Status: "error",
		Data:   data,
		Error: &JSONError{
			Title:   "Verification Failed",
			Message: runErr.Error(),
		},
	}
}
