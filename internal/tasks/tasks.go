package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/shared"
)

// ImportFailure records a call that could not be stored.
type ImportFailure struct {
	CallID string
	Err    error
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Total    int             // Calls read from the source
	Imported int             // Calls stored
	Skipped  int             // Calls whose Call-ID was already stored
	Failed   int             // Calls rejected by the repository
	Calls    []*models.Call  // Stored calls in source order
	Failures []ImportFailure // One entry per failed call
}

// Importer loads call dumps into a [models.Repository].
type Importer struct {
	repo   models.Repository
	logger *log.Logger
}

// NewImporter creates an Importer. A nil logger discards output.
func NewImporter(repo models.Repository, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Importer{repo: repo, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (i *Importer) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// ImportFile opens path and imports the JSON array of calls it contains.
func (i *Importer) ImportFile(ctx context.Context, path string, progress chan<- ProgressUpdate) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	i.sendProgress(progress, readSourceUpdate(path))
	return i.Import(ctx, f, progress)
}

// Import decodes a JSON array of calls from r and stores each one.
//
// Cancelling ctx stops the import between calls and returns the partial result with ctx's error.
func (i *Importer) Import(ctx context.Context, r io.Reader, progress chan<- ProgressUpdate) (*ImportResult, error) {
	var calls []*models.Call
	if err := json.NewDecoder(r).Decode(&calls); err != nil {
		return nil, fmt.Errorf("%w: failed to decode calls: %v", shared.ErrInvalidInput, err)
	}

	result := &ImportResult{Total: len(calls)}
	for n, call := range calls {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		step := n + 1

		if call == nil {
			result.Failed++
			result.Failures = append(result.Failures, ImportFailure{Err: shared.ErrInvalidInput})
			i.sendProgress(progress, failedUpdate(step, result.Total, "<null>", shared.ErrInvalidInput))
			continue
		}

		if _, err := i.repo.GetByCallID(call.CallID); err == nil {
			result.Skipped++
			i.logger.Debug("skipping stored call", "call_id", call.CallID)
			i.sendProgress(progress, skippedUpdate(step, result.Total, call.CallID))
			continue
		}

		call.ID = ""
		if err := i.repo.Create(call); err != nil {
			if errors.Is(err, shared.ErrDuplicateCall) {
				result.Skipped++
				i.sendProgress(progress, skippedUpdate(step, result.Total, call.CallID))
				continue
			}

			result.Failed++
			result.Failures = append(result.Failures, ImportFailure{CallID: call.CallID, Err: err})
			i.logger.Warn("failed to import call", "call_id", call.CallID, "error", err)
			i.sendProgress(progress, failedUpdate(step, result.Total, call.CallID, err))
			continue
		}

		result.Imported++
		result.Calls = append(result.Calls, call)
		i.sendProgress(progress, importedUpdate(step, result.Total, call))
	}

	i.logger.Info("import complete", "imported", result.Imported, "skipped", result.Skipped, "failed", result.Failed)
	i.sendProgress(progress, summaryUpdate(result))
	return result, nil
}
