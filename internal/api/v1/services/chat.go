package services

import (
	"context"

	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/app/api"
)

// ChatServiceImpl implements ChatService
type ChatServiceImpl struct {
	chat api.ChatCompleter
}

// NewChatService creates a new chat service
func NewChatService(chat api.ChatCompleter) ChatService {
	return &ChatServiceImpl{chat: chat}
}

// Ask answers a one-shot question grounded on the supplied video context.
func (s *ChatServiceImpl) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	answer, err := s.chat.Answer(ctx, req.Question, api.VideoContext{
		Transcript: req.VideoContext.Transcript,
		Summary:    req.VideoContext.Summary,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ChatResponse{Answer: answer}, nil
}
