package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	apperrors "vidglobe/internal/app/errors"
)

const translationSystemPrompt = "You are a professional translator. Translate the following text to %s. Maintain the original meaning and tone."

// ChatTranslator implements api.Translator on chat completions.
type ChatTranslator struct {
	client *openai.Client
	model  string
}

// NewChatTranslator creates a new ChatTranslator instance.
func NewChatTranslator(client *openai.Client, config Config) *ChatTranslator {
	config = config.withDefaults()
	return &ChatTranslator{client: client, model: config.ChatModel}
}

// Translate renders text into targetLanguage.
func (t *ChatTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(translationSystemPrompt, targetLanguage),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}
	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.Submission(err, "translation")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", apperrors.Provider("translation", "empty translation returned")
	}
	return resp.Choices[0].Message.Content, nil
}
