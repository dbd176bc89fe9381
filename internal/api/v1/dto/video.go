package dto

import (
	"time"

	"vidglobe/internal/api/errors"
	"vidglobe/internal/app/model"
)

// UploadVideoMetadata is the metadata bag accepted by the intake
// endpoint, sent as a JSON form field next to the optional video file.
type UploadVideoMetadata struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	OriginalLanguage string `json:"originalLanguage,omitempty"`
	TargetLanguage   string `json:"targetLanguage,omitempty"`
	OriginalURL      string `json:"originalUrl,omitempty"`
}

// ProcessVideoRequest triggers a processing run for one record.
type ProcessVideoRequest struct {
	VideoID        string `json:"video_id" binding:"required"`
	TargetLanguage string `json:"target_language,omitempty"`
}

// Validate performs domain-specific validation
func (r *ProcessVideoRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.VideoID == "" {
		validationErrors["video_id"] = "video id is required"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid processing request", validationErrors)
	}
	return nil
}

// VideoResponse represents a video record in API responses
type VideoResponse struct {
	ID                   string                 `json:"id"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description,omitempty"`
	OriginalLanguage     string                 `json:"original_language,omitempty"`
	TargetLanguage       string                 `json:"target_language,omitempty"`
	OriginalURL          string                 `json:"original_url,omitempty"`
	StoredURL            string                 `json:"stored_url"`
	TranslatedURL        string                 `json:"translated_url,omitempty"`
	Transcript           string                 `json:"transcript,omitempty"`
	TranslatedTranscript string                 `json:"translated_transcript,omitempty"`
	Summary              string                 `json:"summary,omitempty"`
	Status               string                 `json:"status"`
	Error                string                 `json:"error,omitempty"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

// ToVideoResponse converts a record to its API representation.
func ToVideoResponse(video *model.Video) VideoResponse {
	return VideoResponse{
		ID:                   video.ID,
		Title:                video.Title,
		Description:          video.Description,
		OriginalLanguage:     video.OriginalLanguage,
		TargetLanguage:       video.TargetLanguage,
		OriginalURL:          video.OriginalURL,
		StoredURL:            video.StoredURL,
		TranslatedURL:        video.TranslatedURL,
		Transcript:           video.Transcript,
		TranslatedTranscript: video.TranslatedTranscript,
		Summary:              video.Summary,
		Status:               string(video.Status),
		Error:                video.ErrorMessage,
		Metadata:             video.Metadata,
		CreatedAt:            video.CreatedAt,
		UpdatedAt:            video.UpdatedAt,
	}
}

// ListVideosQuery holds pagination and filtering for the list endpoint.
type ListVideosQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending processing completed failed"`
}

// Pagination describes one result page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// PaginatedVideosResponse is the list endpoint payload.
type PaginatedVideosResponse struct {
	Videos     []VideoResponse `json:"videos"`
	Pagination Pagination      `json:"pagination"`
}
