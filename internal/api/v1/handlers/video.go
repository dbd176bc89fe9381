package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vidglobe/internal/api/errors"
	"vidglobe/internal/api/middleware"
	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/api/v1/services"
	"vidglobe/internal/app/model"
)

// 500 MB, matching the object store's single-part ceiling.
const maxUploadBytes = 500 << 20

// VideoHandler handles video-related API endpoints
type VideoHandler struct {
	service services.VideoService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(service services.VideoService) *VideoHandler {
	return &VideoHandler{
		service: service,
	}
}

// Upload handles POST /api/v1/videos
// Accepts either a multipart video file or a source URL in the metadata.
//
// @Summary Submit a video for translation
// @Description Accepts a binary video payload or a source URL plus a metadata bag and creates a pending record
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param video formData file false "Video file"
// @Param metadata formData string false "Metadata JSON: title, description, originalLanguage, targetLanguage, originalUrl"
// @Success 201 {object} dto.VideoResponse "Video record created"
// @Failure 400 {object} errors.APIError "Bad request - neither file nor URL provided"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /videos [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	var meta dto.UploadVideoMetadata
	if raw := c.PostForm("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("Invalid metadata JSON"))
			return
		}
	}

	source, err := h.readSource(c, meta)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UploadVideo(c.Request.Context(), source, meta)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// readSource dispatches the tagged intake variant: a user-supplied URL
// wins over an attached file, matching the original intake behavior.
func (h *VideoHandler) readSource(c *gin.Context, meta dto.UploadVideoMetadata) (model.Source, error) {
	if meta.OriginalURL != "" {
		return model.URLSource(meta.OriginalURL), nil
	}

	file, header, err := c.Request.FormFile("video")
	if err != nil {
		return model.Source{}, errors.NewBadRequestError("Neither video file nor URL provided")
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		return model.Source{}, errors.NewBadRequestError("Video file exceeds the upload size limit")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return model.Source{}, errors.NewInternalError("Failed to read uploaded file")
	}

	return model.FileSource(header.Filename, header.Header.Get("Content-Type"), data), nil
}

// Get handles GET /api/v1/videos/:id
//
// @Summary Get video by ID
// @Description Retrieves one video record including its processing status and derived artifacts
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.VideoResponse "Video record"
// @Failure 404 {object} errors.APIError "Video not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid video ID"))
		return
	}

	response, err := h.service.GetVideo(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/v1/videos
//
// @Summary List videos with pagination
// @Description Retrieves a paginated list of video records with optional status filtering
// @Tags videos
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Param status query string false "Filter by status" Enums(pending,processing,completed,failed)
// @Success 200 {object} dto.PaginatedVideosResponse "List of videos with pagination"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Total number of videos"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var query dto.ListVideosQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListVideos(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))
	c.JSON(http.StatusOK, response)
}

// Process handles POST /api/v1/videos/:id/process
// Triggers the translation pipeline for one record and blocks until the
// run reaches a terminal state.
//
// @Summary Trigger video processing
// @Description Runs the dubbing pipeline for a pending or failed video; blocks until completion, failure, or the polling deadline
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body dto.ProcessVideoRequest false "Optional target language override"
// @Success 200 {object} dto.VideoResponse "Processing completed"
// @Failure 404 {object} errors.APIError "Video not found"
// @Failure 409 {object} errors.APIError "Video is already being processed"
// @Failure 422 {object} errors.APIError "Missing precondition (target language or stored URL)"
// @Failure 502 {object} errors.APIError "Dubbing provider reported failure"
// @Failure 504 {object} errors.APIError "Dubbing polling deadline exceeded"
// @Router /videos/{id}/process [post]
func (h *VideoHandler) Process(c *gin.Context) {
	req := dto.ProcessVideoRequest{VideoID: c.Param("id")}

	// The body is optional; it may carry a target language override.
	if c.Request.ContentLength > 0 {
		var body dto.ProcessVideoRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("Invalid request body"))
			return
		}
		req.TargetLanguage = body.TargetLanguage
		if req.VideoID == "" {
			req.VideoID = body.VideoID
		}
	}

	if err := req.Validate(); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ProcessVideo(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
