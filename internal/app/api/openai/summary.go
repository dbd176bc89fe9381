package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	apperrors "vidglobe/internal/app/errors"
)

const summarySystemPrompt = "You are a helpful assistant that creates concise video summaries. Focus on key points and main ideas."

// ChatSummarizer implements api.Summarizer on chat completions.
type ChatSummarizer struct {
	client *openai.Client
	model  string
}

// NewChatSummarizer creates a new ChatSummarizer instance.
func NewChatSummarizer(client *openai.Client, config Config) *ChatSummarizer {
	config = config.withDefaults()
	return &ChatSummarizer{client: client, model: config.ChatModel}
}

// Summarize produces a short summary of text, written in targetLanguage
// when one is given.
func (s *ChatSummarizer) Summarize(ctx context.Context, text, targetLanguage string) (string, error) {
	system := summarySystemPrompt
	if targetLanguage != "" {
		system = fmt.Sprintf("%s Write the summary in %s.", system, targetLanguage)
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Please provide a summary of this video content:\n\n%s", text),
			},
		},
	}
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.Submission(err, "summarization")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", apperrors.Provider("summarization", "empty summary returned")
	}
	return resp.Choices[0].Message.Content, nil
}
