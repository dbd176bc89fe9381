package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"vidglobe/internal/api/v1/dto"
	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// ExportServiceImpl implements the ExportService interface
type ExportServiceImpl struct {
	dao repository.VideoDAO
}

// NewExportService creates a new export service
func NewExportService(dao repository.VideoDAO) ExportService {
	return &ExportServiceImpl{dao: dao}
}

var exportHeader = []string{
	"ID", "Title", "Status", "Original Language", "Target Language",
	"Stored URL", "Translated URL", "Summary", "Error", "Created At",
}

// ExportVideos streams records in the requested format.
func (s *ExportServiceImpl) ExportVideos(ctx context.Context, query dto.ExportQuery, writer io.Writer) error {
	limit := query.Limit
	if limit == 0 {
		limit = 1000
	}

	videos, _, err := s.dao.List(ctx, model.Status(query.Status), limit, 0)
	if err != nil {
		return apperrors.Persistence(err, "export videos")
	}

	switch query.Format {
	case "csv":
		return exportCSV(videos, writer)
	case "json":
		return exportJSON(videos, writer)
	default:
		return exportXLSX(videos, writer)
	}
}

func exportRow(v model.Video) []string {
	return []string{
		v.ID, v.Title, string(v.Status), v.OriginalLanguage, v.TargetLanguage,
		v.StoredURL, v.TranslatedURL, v.Summary, v.ErrorMessage,
		v.CreatedAt.Format(time.RFC3339),
	}
}

func exportXLSX(videos []model.Video, writer io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Videos")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, column := range exportHeader {
		headerRow.AddCell().Value = column
	}

	for _, v := range videos {
		row := sheet.AddRow()
		for _, value := range exportRow(v) {
			row.AddCell().Value = value
		}
	}

	return file.Write(writer)
}

func exportCSV(videos []model.Video, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, v := range videos {
		if err := w.Write(exportRow(v)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func exportJSON(videos []model.Video, writer io.Writer) error {
	responses := lo.Map(videos, func(v model.Video, _ int) dto.VideoResponse {
		return dto.ToVideoResponse(&v)
	})
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(responses)
}
