package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"vidglobe/internal/api/middleware"
	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/api/v1/services"
)

// ExportHandler handles record export endpoints
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

var exportContentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":  "text/csv",
	"json": "application/json",
}

// Export handles GET /api/v1/videos/export
//
// @Summary Export video records
// @Description Streams video records as an xlsx, csv, or json attachment
// @Tags videos
// @Produce octet-stream
// @Param format query string false "Export format" default(xlsx) Enums(xlsx,csv,json)
// @Param status query string false "Filter by status" Enums(pending,processing,completed,failed)
// @Param limit query int false "Maximum records" default(1000) minimum(1) maximum(10000)
// @Success 200 {file} file "Exported records"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /videos/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if query.Format == "" {
		query.Format = "xlsx"
	}

	fileName := fmt.Sprintf("videos-%s.%s", time.Now().Format("20060102-150405"), query.Format)
	c.Header("Content-Type", exportContentTypes[query.Format])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, fileName))

	if err := h.service.ExportVideos(c.Request.Context(), query, c.Writer); err != nil {
		middleware.HandleError(c, err)
		return
	}
}
