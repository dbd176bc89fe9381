package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// TestPostgresVideoDAO_Interface verifies PostgresVideoDAO implements VideoDAO
func TestPostgresVideoDAO_Interface(t *testing.T) {
	var _ repository.VideoDAO = (*PostgresVideoDAO)(nil)
}

func newMockDAO(t *testing.T) (*PostgresVideoDAO, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresVideoDAO{db: db}, mock
}

func videoRows(v *model.Video) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "original_language", "target_language",
		"original_url", "stored_url", "translated_url", "transcript", "translated_transcript",
		"summary", "status", "error_message", "metadata", "created_at", "updated_at",
	}).AddRow(
		v.ID, v.Title, v.Description, v.OriginalLanguage, v.TargetLanguage,
		v.OriginalURL, v.StoredURL, v.TranslatedURL, v.Transcript, v.TranslatedTranscript,
		v.Summary, string(v.Status), v.ErrorMessage, `{"is_url":true}`, v.CreatedAt, v.UpdatedAt,
	)
}

func sampleVideo() *model.Video {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &model.Video{
		ID:               "vid-1",
		Title:            "Sample",
		OriginalLanguage: "en",
		TargetLanguage:   "es",
		StoredURL:        "http://store/videos/sample.mp4",
		Status:           model.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestPostgresVideoDAO_Insert(t *testing.T) {
	dao, mock := newMockDAO(t)
	video := sampleVideo()

	mock.ExpectExec("INSERT INTO videos").
		WithArgs(video.ID, video.Title, video.Description, video.OriginalLanguage,
			video.TargetLanguage, video.OriginalURL, video.StoredURL,
			string(video.Status), "{}", video.CreatedAt, video.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.Insert(context.Background(), video)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_FindByID(t *testing.T) {
	dao, mock := newMockDAO(t)
	video := sampleVideo()

	mock.ExpectQuery("SELECT (.+) FROM videos WHERE id").
		WithArgs(video.ID).
		WillReturnRows(videoRows(video))

	found, err := dao.FindByID(context.Background(), video.ID)

	require.NoError(t, err)
	assert.Equal(t, video.ID, found.ID)
	assert.Equal(t, model.StatusPending, found.Status)
	assert.Equal(t, true, found.Metadata["is_url"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_FindByID_NotFound(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectQuery("SELECT (.+) FROM videos WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	found, err := dao.FindByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPostgresVideoDAO_List(t *testing.T) {
	dao, mock := newMockDAO(t)
	video := sampleVideo()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(string(model.StatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs(string(model.StatusPending), 10, 0).
		WillReturnRows(videoRows(video))

	videos, total, err := dao.List(context.Background(), model.StatusPending, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, videos, 1)
	assert.Equal(t, video.ID, videos[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_BeginProcessing(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("UPDATE videos SET status").
		WithArgs(string(model.StatusProcessing), sqlmock.AnyArg(), "vid-1",
			string(model.StatusPending), string(model.StatusFailed)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.BeginProcessing(context.Background(), "vid-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_BeginProcessing_Conflict(t *testing.T) {
	dao, mock := newMockDAO(t)
	video := sampleVideo()
	video.Status = model.StatusProcessing

	// The CAS touches no rows, then the follow-up read finds the record
	// already held by another run.
	mock.ExpectExec("UPDATE videos SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM videos WHERE id").
		WithArgs(video.ID).
		WillReturnRows(videoRows(video))

	err := dao.BeginProcessing(context.Background(), video.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_BeginProcessing_NotFound(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("UPDATE videos SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM videos WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	err := dao.BeginProcessing(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPostgresVideoDAO_CompleteProcessing(t *testing.T) {
	dao, mock := newMockDAO(t)

	results := repository.ProcessingResults{
		TranslatedURL:  "http://store/dubbed/a.mp3",
		Summary:        "recap",
		TargetLanguage: "es",
	}

	mock.ExpectExec("UPDATE videos SET status").
		WithArgs(string(model.StatusCompleted), results.TranslatedURL, results.Summary,
			"", "", "es", sqlmock.AnyArg(), "vid-1", string(model.StatusProcessing)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.CompleteProcessing(context.Background(), "vid-1", results)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_MarkFailed(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("UPDATE videos SET status").
		WithArgs(string(model.StatusFailed), "dubbing failed: no audio", sqlmock.AnyArg(), "vid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.MarkFailed(context.Background(), "vid-1", "dubbing failed: no audio")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVideoDAO_MarkFailed_MissingRecord(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("UPDATE videos SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := dao.MarkFailed(context.Background(), "missing", "boom")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPostgresVideoDAO_Insert_Error(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("INSERT INTO videos").
		WillReturnError(errors.New("connection refused"))

	err := dao.Insert(context.Background(), sampleVideo())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert video failed")
}

func TestPostgresVideoDAO_Close(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectClose()

	assert.NoError(t, dao.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
