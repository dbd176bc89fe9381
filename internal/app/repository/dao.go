package repository

import (
	"context"

	"vidglobe/internal/app/model"
)

// VideoDAO is the persistent record of a video's lifecycle. Records are
// created at intake with status pending, mutated by the processing
// orchestrator, and never deleted here.
type VideoDAO interface {
	// Insert stores a newly created record.
	Insert(ctx context.Context, video *model.Video) error

	// FindByID returns the record or a not_found error.
	FindByID(ctx context.Context, id string) (*model.Video, error)

	// List returns a page of records ordered by creation time descending,
	// optionally filtered by status, plus the total matching count.
	List(ctx context.Context, status model.Status, limit, offset int) ([]model.Video, int, error)

	// BeginProcessing performs the compare-and-swap into processing: the
	// write succeeds only when the prior status is pending or failed.
	// A lost race returns a conflict error, a missing id a not_found error.
	BeginProcessing(ctx context.Context, id string) error

	// CompleteProcessing atomically writes the terminal completed status
	// together with all derived fields produced by the run.
	CompleteProcessing(ctx context.Context, id string, results ProcessingResults) error

	// MarkFailed writes the terminal failed status with the run's error
	// message.
	MarkFailed(ctx context.Context, id string, message string) error

	Close() error
}

// ProcessingResults carries the derived fields of a successful run.
// Unset fields stay NULL on the record.
type ProcessingResults struct {
	TranslatedURL        string
	Summary              string
	Transcript           string
	TranslatedTranscript string
	TargetLanguage       string
}
