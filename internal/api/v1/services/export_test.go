package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/testutil"
)

func newTestExportService(t *testing.T) (ExportService, *testutil.MockVideoDAO) {
	dao := testutil.NewMockVideoDAO(t)
	return NewExportService(dao), dao
}

func TestExportService_CSV(t *testing.T) {
	service, dao := newTestExportService(t)

	dao.On("List", mock.Anything, model.Status(""), 1000, 0).
		Return(testutil.TestVideos, len(testutil.TestVideos), nil)

	var buf bytes.Buffer
	err := service.ExportVideos(context.Background(), dto.ExportQuery{Format: "csv"}, &buf)

	require.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(testutil.TestVideos)+1)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, testutil.TestVideos[0].ID, records[1][0])
	assert.Equal(t, string(testutil.TestVideos[0].Status), records[1][2])
}

func TestExportService_JSON(t *testing.T) {
	service, dao := newTestExportService(t)

	dao.On("List", mock.Anything, model.Status("completed"), 1000, 0).
		Return([]model.Video{*testutil.CompletedVideo()}, 1, nil)

	var buf bytes.Buffer
	err := service.ExportVideos(context.Background(), dto.ExportQuery{
		Format: "json",
		Status: "completed",
	}, &buf)

	require.NoError(t, err)
	var exported []dto.VideoResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "completed", exported[0].Status)
}

func TestExportService_XLSX(t *testing.T) {
	service, dao := newTestExportService(t)

	dao.On("List", mock.Anything, model.Status(""), 1000, 0).
		Return(testutil.TestVideos, len(testutil.TestVideos), nil)

	var buf bytes.Buffer
	err := service.ExportVideos(context.Background(), dto.ExportQuery{Format: "xlsx"}, &buf)

	require.NoError(t, err)
	// xlsx files are zip archives.
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}

func TestExportService_CustomLimit(t *testing.T) {
	service, dao := newTestExportService(t)

	dao.On("List", mock.Anything, model.Status(""), 5, 0).
		Return([]model.Video{}, 0, nil)

	var buf bytes.Buffer
	err := service.ExportVideos(context.Background(), dto.ExportQuery{
		Format: "csv",
		Limit:  5,
	}, &buf)

	require.NoError(t, err)
	dao.AssertExpectations(t)
}
