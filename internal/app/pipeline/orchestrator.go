package pipeline

import (
	"context"
	"log/slog"
	"time"

	"vidglobe/internal/app/api"
	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
	"vidglobe/internal/app/storage"
)

// Orchestrator drives the provider-side dubbing pipeline for one video
// record per invocation: claim the record, submit the dubbing job, poll
// it to a terminal state, re-home the dubbed audio into our own store,
// summarize, then write exactly one terminal status.
//
// There is no queue and no automatic retry; a failed record can be
// retried by triggering processing again.
type Orchestrator struct {
	dao        repository.VideoDAO
	store      storage.ObjectStore
	dubber     api.Dubber
	summarizer api.Summarizer
	metrics    *Metrics
	logger     *slog.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	dao repository.VideoDAO,
	store storage.ObjectStore,
	dubber api.Dubber,
	summarizer api.Summarizer,
	metrics *Metrics,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		dao:        dao,
		store:      store,
		dubber:     dubber,
		summarizer: summarizer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Process runs the pipeline for the given video id. targetLanguage, when
// non-empty, overrides the language stored on the record.
//
// Precondition failures leave the record's status untouched. A trigger
// racing an in-flight run loses the status compare-and-swap and returns
// a conflict error. After the record enters processing, every exit path
// writes a terminal status before returning.
func (o *Orchestrator) Process(ctx context.Context, videoID, targetLanguage string) (*model.Video, error) {
	started := time.Now()

	video, err := o.dao.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if targetLanguage == "" {
		targetLanguage = video.TargetLanguage
	}
	if video.StoredURL == "" {
		return nil, apperrors.RequiredField("stored_url")
	}
	if targetLanguage == "" {
		return nil, apperrors.RequiredField("target_language")
	}

	if err := o.dao.BeginProcessing(ctx, videoID); err != nil {
		return nil, err
	}

	o.logger.Info("processing started",
		"video_id", videoID,
		"target_language", targetLanguage,
	)

	results, err := o.run(ctx, video, targetLanguage)
	if err != nil {
		o.failRun(ctx, videoID, err)
		o.metrics.observeRun("failed", time.Since(started))
		return nil, err
	}

	if err := o.dao.CompleteProcessing(ctx, videoID, results); err != nil {
		err = apperrors.Persistence(err, "final record update")
		o.failRun(ctx, videoID, err)
		o.metrics.observeRun("failed", time.Since(started))
		return nil, err
	}

	o.metrics.observeRun("completed", time.Since(started))
	o.logger.Info("processing completed",
		"video_id", videoID,
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return o.dao.FindByID(ctx, videoID)
}

// run executes the dubbing stages and returns the derived fields. It
// writes nothing to the record; the caller owns the terminal update.
func (o *Orchestrator) run(ctx context.Context, video *model.Video, targetLanguage string) (repository.ProcessingResults, error) {
	var results repository.ProcessingResults

	submitStarted := time.Now()
	jobID, err := o.dubber.Submit(ctx, api.DubbingRequest{
		SourceURL:      video.StoredURL,
		SourceLanguage: video.OriginalLanguage,
		TargetLanguage: targetLanguage,
		SpeakerCount:   0,
		Name:           video.Title,
	})
	if err != nil {
		return results, err
	}
	o.metrics.observeStage("submit", time.Since(submitStarted))
	o.logger.Info("dubbing job submitted", "video_id", video.ID, "job_id", jobID)

	waitStarted := time.Now()
	if err := o.dubber.WaitForCompletion(ctx, jobID); err != nil {
		return results, err
	}
	o.metrics.observeStage("dubbing_wait", time.Since(waitStarted))

	downloadStarted := time.Now()
	audio, err := o.dubber.DownloadAudio(ctx, jobID, targetLanguage)
	if err != nil {
		return results, err
	}
	o.metrics.observeStage("download", time.Since(downloadStarted))

	// The provider URL is ephemeral; the dubbed audio must live in our
	// own store before it goes on the record.
	uploadStarted := time.Now()
	key := storage.GenerateKey("dubbed", "dubbed.mp3")
	translatedURL, err := o.store.Upload(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return results, err
	}
	o.metrics.observeStage("upload", time.Since(uploadStarted))

	// No transcript exists in the dubbing pipeline, so the summary is
	// produced from the title.
	summaryStarted := time.Now()
	summary, err := o.summarizer.Summarize(ctx, video.Title, targetLanguage)
	if err != nil {
		return results, err
	}
	o.metrics.observeStage("summarize", time.Since(summaryStarted))

	results.TranslatedURL = translatedURL
	results.Summary = summary
	results.TargetLanguage = targetLanguage
	return results, nil
}

// failRun records the terminal failed status. If that write itself
// fails, the original error still goes back to the caller.
func (o *Orchestrator) failRun(ctx context.Context, videoID string, runErr error) {
	o.logger.Error("processing failed",
		"video_id", videoID,
		"error", runErr.Error(),
	)
	if err := o.dao.MarkFailed(ctx, videoID, runErr.Error()); err != nil {
		o.logger.Error("failed to record terminal status",
			"video_id", videoID,
			"error", err.Error(),
		)
	}
}
