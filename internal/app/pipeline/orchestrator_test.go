package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vidglobe/internal/app/api"
	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
	"vidglobe/internal/app/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *testutil.MockVideoDAO, *testutil.MockObjectStore, *testutil.MockDubber, *testutil.MockSummarizer) {
	dao := testutil.NewMockVideoDAO(t)
	store := testutil.NewMockObjectStore(t)
	dubber := testutil.NewMockDubber(t)
	summarizer := testutil.NewMockSummarizer(t)
	orch := NewOrchestrator(dao, store, dubber, summarizer, nil, testLogger())
	return orch, dao, store, dubber, summarizer
}

func TestOrchestrator_Process_HappyPath(t *testing.T) {
	orch, dao, store, dubber, summarizer := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	completed := testutil.CompletedVideo()
	completed.ID = pending.ID

	audio := []byte("dubbed-audio-bytes")

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil).Once()
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, api.DubbingRequest{
		SourceURL:      pending.StoredURL,
		SourceLanguage: pending.OriginalLanguage,
		TargetLanguage: "es",
		SpeakerCount:   0,
		Name:           pending.Title,
	}).Return("job-123", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-123").Return(nil)
	dubber.On("DownloadAudio", mock.Anything, "job-123", "es").Return(audio, nil)
	store.On("Upload", mock.Anything, mock.AnythingOfType("string"), audio, "audio/mpeg").
		Return("http://store/dubbed/output.mp3", nil)
	summarizer.On("Summarize", mock.Anything, pending.Title, "es").
		Return("A short keynote recap.", nil)
	dao.On("CompleteProcessing", mock.Anything, pending.ID, repository.ProcessingResults{
		TranslatedURL:  "http://store/dubbed/output.mp3",
		Summary:        "A short keynote recap.",
		TargetLanguage: "es",
	}).Return(nil)
	dao.On("FindByID", mock.Anything, pending.ID).Return(completed, nil).Once()

	result, err := orch.Process(context.Background(), pending.ID, "")

	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, result.Status)
	dao.AssertExpectations(t)
	dubber.AssertExpectations(t)
	store.AssertExpectations(t)
	summarizer.AssertExpectations(t)
}

func TestOrchestrator_Process_TargetLanguageOverride(t *testing.T) {
	orch, dao, store, dubber, summarizer := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	pending.TargetLanguage = "es"

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.MatchedBy(func(req api.DubbingRequest) bool {
		return req.TargetLanguage == "pt"
	})).Return("job-9", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-9").Return(nil)
	dubber.On("DownloadAudio", mock.Anything, "job-9", "pt").Return([]byte("a"), nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "audio/mpeg").
		Return("http://store/dubbed/a.mp3", nil)
	summarizer.On("Summarize", mock.Anything, pending.Title, "pt").Return("resumo", nil)
	dao.On("CompleteProcessing", mock.Anything, pending.ID, mock.MatchedBy(func(r repository.ProcessingResults) bool {
		return r.TargetLanguage == "pt"
	})).Return(nil)

	_, err := orch.Process(context.Background(), pending.ID, "pt")

	require.NoError(t, err)
	dubber.AssertExpectations(t)
}

func TestOrchestrator_Process_MissingTargetLanguage(t *testing.T) {
	orch, dao, _, _, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	pending.TargetLanguage = ""

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)

	result, err := orch.Process(context.Background(), pending.ID, "")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPrecondition))
	assert.Contains(t, err.Error(), "target_language")
	// The record's status is untouched: no CAS, no terminal write.
	dao.AssertNotCalled(t, "BeginProcessing", mock.Anything, mock.Anything)
	dao.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_Process_MissingStoredURL(t *testing.T) {
	orch, dao, _, _, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	pending.StoredURL = ""

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)

	_, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPrecondition))
	assert.Contains(t, err.Error(), "stored_url")
	dao.AssertNotCalled(t, "BeginProcessing", mock.Anything, mock.Anything)
}

func TestOrchestrator_Process_NotFound(t *testing.T) {
	orch, dao, _, _, _ := newTestOrchestrator(t)

	dao.On("FindByID", mock.Anything, "missing-id").
		Return(nil, apperrors.NotFound("video", "missing-id"))

	result, err := orch.Process(context.Background(), "missing-id", "es")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestOrchestrator_Process_ConcurrentTriggerLosesCAS(t *testing.T) {
	orch, dao, _, dubber, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).
		Return(apperrors.Conflict("video is already being processed"))

	_, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	// The loser must not touch the provider or the record.
	dubber.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	dao.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_Process_ProviderFailureMarksFailed(t *testing.T) {
	orch, dao, _, dubber, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	providerErr := apperrors.Provider("elevenlabs", "source audio track missing")

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.Anything).Return("job-7", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-7").Return(providerErr)
	dao.On("MarkFailed", mock.Anything, pending.ID, providerErr.Error()).Return(nil)

	result, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsKind(err, apperrors.KindProvider))
	dao.AssertNotCalled(t, "CompleteProcessing", mock.Anything, mock.Anything, mock.Anything)
	dao.AssertExpectations(t)
}

func TestOrchestrator_Process_TimeoutMarksFailed(t *testing.T) {
	orch, dao, _, dubber, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	timeoutErr := apperrors.Timeout("dubbing", "5m0s")

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.Anything).Return("job-8", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-8").Return(timeoutErr)
	dao.On("MarkFailed", mock.Anything, pending.ID, timeoutErr.Error()).Return(nil)

	_, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTimeout))
	dao.AssertExpectations(t)
}

func TestOrchestrator_Process_UploadFailureMarksFailed(t *testing.T) {
	orch, dao, store, dubber, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	uploadErr := apperrors.Persistence(errors.New("connection reset"), "object upload")

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.Anything).Return("job-10", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-10").Return(nil)
	dubber.On("DownloadAudio", mock.Anything, "job-10", "es").Return([]byte("a"), nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "audio/mpeg").
		Return("", uploadErr)
	dao.On("MarkFailed", mock.Anything, pending.ID, uploadErr.Error()).Return(nil)

	_, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPersistence))
	dao.AssertExpectations(t)
}

func TestOrchestrator_Process_CompleteWriteFailureMarksFailed(t *testing.T) {
	orch, dao, store, dubber, summarizer := newTestOrchestrator(t)

	pending := testutil.PendingVideo()

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.Anything).Return("job-11", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-11").Return(nil)
	dubber.On("DownloadAudio", mock.Anything, "job-11", "es").Return([]byte("a"), nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "audio/mpeg").
		Return("http://store/dubbed/a.mp3", nil)
	summarizer.On("Summarize", mock.Anything, pending.Title, "es").Return("summary", nil)
	dao.On("CompleteProcessing", mock.Anything, pending.ID, mock.Anything).
		Return(errors.New("disk full"))
	dao.On("MarkFailed", mock.Anything, pending.ID, mock.AnythingOfType("string")).Return(nil)

	_, err := orch.Process(context.Background(), pending.ID, "es")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPersistence))
	dao.AssertExpectations(t)
}

func TestOrchestrator_Process_MarkFailedErrorStillReturnsRunError(t *testing.T) {
	orch, dao, _, dubber, _ := newTestOrchestrator(t)

	pending := testutil.PendingVideo()
	providerErr := apperrors.Provider("elevenlabs", "render crashed")

	dao.On("FindByID", mock.Anything, pending.ID).Return(pending, nil)
	dao.On("BeginProcessing", mock.Anything, pending.ID).Return(nil)
	dubber.On("Submit", mock.Anything, mock.Anything).Return("job-12", nil)
	dubber.On("WaitForCompletion", mock.Anything, "job-12").Return(providerErr)
	dao.On("MarkFailed", mock.Anything, pending.ID, providerErr.Error()).
		Return(errors.New("write failed"))

	_, err := orch.Process(context.Background(), pending.ID, "es")

	// The run's own error wins over the bookkeeping failure.
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindProvider))
}
