package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// MockVideoDAO is a mock implementation of repository.VideoDAO
type MockVideoDAO struct {
	mock.Mock
}

func NewMockVideoDAO(t *testing.T) *MockVideoDAO {
	m := &MockVideoDAO{}
	m.Test(t)
	return m
}

func (m *MockVideoDAO) Insert(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoDAO) FindByID(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoDAO) List(ctx context.Context, status model.Status, limit, offset int) ([]model.Video, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Video), args.Int(1), args.Error(2)
}

func (m *MockVideoDAO) BeginProcessing(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoDAO) CompleteProcessing(ctx context.Context, id string, results repository.ProcessingResults) error {
	args := m.Called(ctx, id, results)
	return args.Error(0)
}

func (m *MockVideoDAO) MarkFailed(ctx context.Context, id string, message string) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

func (m *MockVideoDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}
