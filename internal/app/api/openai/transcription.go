package openai

import (
	"bytes"
	"context"

	"github.com/sashabaranov/go-openai"

	apperrors "vidglobe/internal/app/errors"
)

// WhisperTranscriber implements api.Transcriber on the audio
// transcription endpoint.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber creates a new WhisperTranscriber instance.
func NewWhisperTranscriber(client *openai.Client, config Config) *WhisperTranscriber {
	config = config.withDefaults()
	return &WhisperTranscriber{client: client, model: config.WhisperModel}
}

// Transcribe submits the audio bytes as a single blocking call. The
// caller surfaces failure as a terminal pipeline failure.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, fileName string) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(audio),
		FilePath: fileName,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.Submission(err, "transcription")
	}
	if resp.Text == "" {
		return "", apperrors.Provider("transcription", "empty transcript returned")
	}
	return resp.Text, nil
}
