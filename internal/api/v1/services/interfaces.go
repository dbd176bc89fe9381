package services

import (
	"context"
	"io"

	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/app/model"
)

// VideoService covers intake, retrieval and the processing trigger.
type VideoService interface {
	UploadVideo(ctx context.Context, source model.Source, meta dto.UploadVideoMetadata) (*dto.VideoResponse, error)
	GetVideo(ctx context.Context, id string) (*dto.VideoResponse, error)
	ListVideos(ctx context.Context, query dto.ListVideosQuery) (*dto.PaginatedVideosResponse, error)
	ProcessVideo(ctx context.Context, req *dto.ProcessVideoRequest) (*dto.VideoResponse, error)
}

// ChatService answers one-shot questions about a video.
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// ExportService streams video records in a chosen format.
type ExportService interface {
	ExportVideos(ctx context.Context, query dto.ExportQuery, writer io.Writer) error
}

// Processor is the slice of the pipeline orchestrator the API needs.
type Processor interface {
	Process(ctx context.Context, videoID, targetLanguage string) (*model.Video, error)
}
