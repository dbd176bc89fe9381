package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// TestSQLiteVideoDAO_Interface verifies SQLiteVideoDAO implements VideoDAO
func TestSQLiteVideoDAO_Interface(t *testing.T) {
	var _ repository.VideoDAO = (*SQLiteVideoDAO)(nil)
}

func newTestDAO(t *testing.T) *SQLiteVideoDAO {
	dao := NewSQLiteVideoDAO(filepath.Join(t.TempDir(), "vidglobe_test.db"))
	t.Cleanup(func() { dao.Close() })
	return dao
}

func newTestVideo(id string) *model.Video {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Video{
		ID:               id,
		Title:            "Test Video",
		OriginalLanguage: "en",
		TargetLanguage:   "es",
		StoredURL:        "http://store/videos/" + id + ".mp4",
		Status:           model.StatusPending,
		Metadata:         map[string]interface{}{"is_url": false},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestSQLiteVideoDAO_InsertAndFind(t *testing.T) {
	dao := newTestDAO(t)
	ctx := context.Background()
	video := newTestVideo("vid-1")

	require.NoError(t, dao.Insert(ctx, video))

	found, err := dao.FindByID(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, video.Title, found.Title)
	assert.Equal(t, video.StoredURL, found.StoredURL)
	assert.Equal(t, model.StatusPending, found.Status)
	assert.Equal(t, false, found.Metadata["is_url"])
}

func TestSQLiteVideoDAO_FindByID_NotFound(t *testing.T) {
	dao := newTestDAO(t)

	_, err := dao.FindByID(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestSQLiteVideoDAO_List(t *testing.T) {
	dao := newTestDAO(t)
	ctx := context.Background()

	first := newTestVideo("vid-1")
	second := newTestVideo("vid-2")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	second.Status = model.StatusCompleted
	require.NoError(t, dao.Insert(ctx, first))
	require.NoError(t, dao.Insert(ctx, second))

	t.Run("all_statuses_newest_first", func(t *testing.T) {
		videos, total, err := dao.List(ctx, "", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, videos, 2)
		assert.Equal(t, "vid-2", videos[0].ID)
		assert.Equal(t, "vid-1", videos[1].ID)
	})

	t.Run("status_filter", func(t *testing.T) {
		videos, total, err := dao.List(ctx, model.StatusCompleted, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, videos, 1)
		assert.Equal(t, "vid-2", videos[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		videos, total, err := dao.List(ctx, "", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, videos, 1)
		assert.Equal(t, "vid-1", videos[0].ID)
	})
}

func TestSQLiteVideoDAO_LifecycleTransitions(t *testing.T) {
	dao := newTestDAO(t)
	ctx := context.Background()
	video := newTestVideo("vid-1")
	require.NoError(t, dao.Insert(ctx, video))

	// pending -> processing
	require.NoError(t, dao.BeginProcessing(ctx, "vid-1"))
	found, err := dao.FindByID(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, found.Status)

	// duplicate trigger loses the CAS
	err = dao.BeginProcessing(ctx, "vid-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// processing -> completed with derived fields
	results := repository.ProcessingResults{
		TranslatedURL:  "http://store/dubbed/vid-1.mp3",
		Summary:        "A recap.",
		TargetLanguage: "fr",
	}
	require.NoError(t, dao.CompleteProcessing(ctx, "vid-1", results))
	found, err = dao.FindByID(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, found.Status)
	assert.Equal(t, results.TranslatedURL, found.TranslatedURL)
	assert.Equal(t, results.Summary, found.Summary)
	assert.Equal(t, "fr", found.TargetLanguage)
	assert.Empty(t, found.ErrorMessage)
}

func TestSQLiteVideoDAO_FailedRecordCanRetry(t *testing.T) {
	dao := newTestDAO(t)
	ctx := context.Background()
	require.NoError(t, dao.Insert(ctx, newTestVideo("vid-1")))

	require.NoError(t, dao.BeginProcessing(ctx, "vid-1"))
	require.NoError(t, dao.MarkFailed(ctx, "vid-1", "dubbing failed"))

	found, err := dao.FindByID(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, found.Status)
	assert.Equal(t, "dubbing failed", found.ErrorMessage)

	// failed -> processing on a retried trigger, clearing the old error
	require.NoError(t, dao.BeginProcessing(ctx, "vid-1"))
	found, err = dao.FindByID(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, found.Status)
	assert.Empty(t, found.ErrorMessage)
}

func TestSQLiteVideoDAO_CompleteProcessing_RequiresProcessingStatus(t *testing.T) {
	dao := newTestDAO(t)
	ctx := context.Background()
	require.NoError(t, dao.Insert(ctx, newTestVideo("vid-1")))

	// Still pending: the guarded update must not apply.
	err := dao.CompleteProcessing(ctx, "vid-1", repository.ProcessingResults{})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	found, findErr := dao.FindByID(ctx, "vid-1")
	require.NoError(t, findErr)
	assert.Equal(t, model.StatusPending, found.Status)
}

func TestSQLiteVideoDAO_BeginProcessing_NotFound(t *testing.T) {
	dao := newTestDAO(t)

	err := dao.BeginProcessing(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
