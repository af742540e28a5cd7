package tasks

import (
	"fmt"

	"github.com/desertthunder/callx/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ReadSource Phase = iota
	ImportCalls
	Summary
)

func (p Phase) String() string {
	switch p {
	case ReadSource:
		return "read_source"
	case ImportCalls:
		return "import_calls"
	case Summary:
		return "summary"
	default:
		return ""
	}
}

func readSourceUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading calls from %s...", name),
	}
}

func importedUpdate(step, total int, call *models.Call) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCalls,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s %s → %s", step, total, call.Method, call.From, call.To),
		Data:    call,
	}
}

func skippedUpdate(step, total int, callID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCalls,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] - %s already stored", step, total, callID),
	}
}

func failedUpdate(step, total int, callID string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCalls,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, callID, err),
	}
}

func summaryUpdate(result *ImportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summary,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Imported %d of %d calls (%d skipped, %d failed)", result.Imported, result.Total, result.Skipped, result.Failed),
		Data:    result,
	}
}
