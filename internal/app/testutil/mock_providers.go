package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"vidglobe/internal/app/api"
)

// MockTranscriber is a mock implementation of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, fileName string) (string, error) {
	args := m.Called(ctx, audio, fileName)
	return args.String(0), args.Error(1)
}

// MockTranslator is a mock implementation of api.Translator
type MockTranslator struct {
	mock.Mock
}

func NewMockTranslator(t *testing.T) *MockTranslator {
	m := &MockTranslator{}
	m.Test(t)
	return m
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

// MockSummarizer is a mock implementation of api.Summarizer
type MockSummarizer struct {
	mock.Mock
}

func NewMockSummarizer(t *testing.T) *MockSummarizer {
	m := &MockSummarizer{}
	m.Test(t)
	return m
}

func (m *MockSummarizer) Summarize(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

// MockSpeechSynthesizer is a mock implementation of api.SpeechSynthesizer
type MockSpeechSynthesizer struct {
	mock.Mock
}

func NewMockSpeechSynthesizer(t *testing.T) *MockSpeechSynthesizer {
	m := &MockSpeechSynthesizer{}
	m.Test(t)
	return m
}

func (m *MockSpeechSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockChatCompleter is a mock implementation of api.ChatCompleter
type MockChatCompleter struct {
	mock.Mock
}

func NewMockChatCompleter(t *testing.T) *MockChatCompleter {
	m := &MockChatCompleter{}
	m.Test(t)
	return m
}

func (m *MockChatCompleter) Answer(ctx context.Context, question string, videoContext api.VideoContext) (string, error) {
	args := m.Called(ctx, question, videoContext)
	return args.String(0), args.Error(1)
}

// MockDubber is a mock implementation of api.Dubber
type MockDubber struct {
	mock.Mock
}

func NewMockDubber(t *testing.T) *MockDubber {
	m := &MockDubber{}
	m.Test(t)
	return m
}

func (m *MockDubber) Submit(ctx context.Context, req api.DubbingRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockDubber) Poll(ctx context.Context, jobID string) (api.DubbingPoll, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(api.DubbingPoll), args.Error(1)
}

func (m *MockDubber) WaitForCompletion(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockDubber) DownloadAudio(ctx context.Context, jobID, languageCode string) ([]byte, error) {
	args := m.Called(ctx, jobID, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
