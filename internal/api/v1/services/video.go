package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"vidglobe/internal/api/errors"
	"vidglobe/internal/api/v1/dto"
	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
	"vidglobe/internal/app/storage"
)

const defaultTitle = "Untitled Video"

// VideoServiceImpl implements VideoService
type VideoServiceImpl struct {
	dao       repository.VideoDAO
	store     storage.ObjectStore
	processor Processor
}

// NewVideoService creates a new video service
func NewVideoService(dao repository.VideoDAO, store storage.ObjectStore, processor Processor) VideoService {
	return &VideoServiceImpl{
		dao:       dao,
		store:     store,
		processor: processor,
	}
}

// UploadVideo accepts intake from either a binary payload or a source
// URL and creates a pending record. URL intake stores the URL directly;
// file intake uploads into the object store under a generated key.
func (s *VideoServiceImpl) UploadVideo(ctx context.Context, source model.Source, meta dto.UploadVideoMetadata) (*dto.VideoResponse, error) {
	var storedURL, originalURL string
	metadata := map[string]interface{}{
		"is_url": source.Kind == model.SourceURL,
	}

	switch source.Kind {
	case model.SourceURL:
		if source.URL == "" {
			return nil, errors.NewBadRequestError("Neither video file nor URL provided")
		}
		storedURL = source.URL
		originalURL = source.URL
	case model.SourceFile:
		if len(source.Data) == 0 {
			return nil, errors.NewBadRequestError("Neither video file nor URL provided")
		}
		key := storage.GenerateKey("videos", source.FileName)
		url, err := s.store.Upload(ctx, key, source.Data, source.ContentType)
		if err != nil {
			return nil, err
		}
		storedURL = url
		originalURL = url
		metadata["original_filename"] = source.FileName
		metadata["content_type"] = source.ContentType
		metadata["size"] = source.Size
	}

	title := meta.Title
	if title == "" {
		title = defaultTitle
	}

	now := time.Now()
	video := &model.Video{
		ID:               uuid.New().String(),
		Title:            title,
		Description:      meta.Description,
		OriginalLanguage: meta.OriginalLanguage,
		TargetLanguage:   meta.TargetLanguage,
		OriginalURL:      originalURL,
		StoredURL:        storedURL,
		Status:           model.StatusPending,
		Metadata:         metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.dao.Insert(ctx, video); err != nil {
		return nil, apperrors.Persistence(err, "create video record")
	}

	resp := dto.ToVideoResponse(video)
	return &resp, nil
}

// GetVideo retrieves a record by id.
func (s *VideoServiceImpl) GetVideo(ctx context.Context, id string) (*dto.VideoResponse, error) {
	video, err := s.dao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToVideoResponse(video)
	return &resp, nil
}

// ListVideos returns a page of records.
func (s *VideoServiceImpl) ListVideos(ctx context.Context, query dto.ListVideosQuery) (*dto.PaginatedVideosResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	videos, total, err := s.dao.List(ctx, model.Status(query.Status), limit, offset)
	if err != nil {
		return nil, apperrors.Persistence(err, "list videos")
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &dto.PaginatedVideosResponse{
		Videos: lo.Map(videos, func(v model.Video, _ int) dto.VideoResponse {
			return dto.ToVideoResponse(&v)
		}),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// ProcessVideo triggers a synchronous pipeline run and returns the
// updated record. The run blocks for up to the dubbing poll deadline.
func (s *VideoServiceImpl) ProcessVideo(ctx context.Context, req *dto.ProcessVideoRequest) (*dto.VideoResponse, error) {
	video, err := s.processor.Process(ctx, req.VideoID, req.TargetLanguage)
	if err != nil {
		return nil, err
	}
	resp := dto.ToVideoResponse(video)
	return &resp, nil
}
