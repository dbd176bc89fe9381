package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/app/model"
)

// MockServices contains all mock services for testing
type MockServices struct {
	VideoService  *MockVideoService
	ChatService   *MockChatService
	ExportService *MockExportService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		VideoService:  NewMockVideoService(t),
		ChatService:   NewMockChatService(t),
		ExportService: NewMockExportService(t),
	}
}

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

func NewMockVideoService(t *testing.T) *MockVideoService {
	m := &MockVideoService{}
	m.Test(t)
	return m
}

func (m *MockVideoService) UploadVideo(ctx context.Context, source model.Source, meta dto.UploadVideoMetadata) (*dto.VideoResponse, error) {
	args := m.Called(ctx, source, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoResponse), args.Error(1)
}

func (m *MockVideoService) GetVideo(ctx context.Context, id string) (*dto.VideoResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoResponse), args.Error(1)
}

func (m *MockVideoService) ListVideos(ctx context.Context, query dto.ListVideosQuery) (*dto.PaginatedVideosResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedVideosResponse), args.Error(1)
}

func (m *MockVideoService) ProcessVideo(ctx context.Context, req *dto.ProcessVideoRequest) (*dto.VideoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoResponse), args.Error(1)
}

// MockChatService is a mock implementation of ChatService
type MockChatService struct {
	mock.Mock
}

func NewMockChatService(t *testing.T) *MockChatService {
	m := &MockChatService{}
	m.Test(t)
	return m
}

func (m *MockChatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func NewMockExportService(t *testing.T) *MockExportService {
	m := &MockExportService{}
	m.Test(t)
	return m
}

func (m *MockExportService) ExportVideos(ctx context.Context, query dto.ExportQuery, writer io.Writer) error {
	args := m.Called(ctx, query, writer)
	return args.Error(0)
}

// MockProcessor is a mock implementation of the pipeline Processor slice
type MockProcessor struct {
	mock.Mock
}

func NewMockProcessor(t *testing.T) *MockProcessor {
	m := &MockProcessor{}
	m.Test(t)
	return m
}

func (m *MockProcessor) Process(ctx context.Context, videoID, targetLanguage string) (*model.Video, error) {
	args := m.Called(ctx, videoID, targetLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}
