package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"vidglobe/internal/app/api"
	apperrors "vidglobe/internal/app/errors"
)

const chatSystemPrompt = "You are a helpful assistant that answers questions about video content. Use the provided transcript and summary to give accurate, relevant answers."

// VideoChat implements api.ChatCompleter for one-shot questions grounded
// on a video's transcript and summary.
type VideoChat struct {
	client *openai.Client
	model  string
}

// NewVideoChat creates a new VideoChat instance.
func NewVideoChat(client *openai.Client, config Config) *VideoChat {
	config = config.withDefaults()
	return &VideoChat{client: client, model: config.ChatModel}
}

// Answer responds to a question about the given video context.
func (c *VideoChat) Answer(ctx context.Context, question string, videoContext api.VideoContext) (string, error) {
	userContent := fmt.Sprintf("Video Context:\nTranscript: %s\nSummary: %s\n\nQuestion: %s",
		videoContext.Transcript, videoContext.Summary, question)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: chatSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userContent,
			},
		},
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.Submission(err, "chat")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", apperrors.Provider("chat", "empty answer returned")
	}
	return resp.Choices[0].Message.Content, nil
}
