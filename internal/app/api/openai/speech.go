package openai

import (
	"context"
	"io"

	"github.com/sashabaranov/go-openai"

	apperrors "vidglobe/internal/app/errors"
)

// SpeechClient implements api.SpeechSynthesizer on the text-to-speech
// endpoint.
type SpeechClient struct {
	client *openai.Client
	model  string
	voice  string
}

// NewSpeechClient creates a new SpeechClient instance.
func NewSpeechClient(client *openai.Client, config Config) *SpeechClient {
	config = config.withDefaults()
	return &SpeechClient{client: client, model: config.SpeechModel, voice: config.SpeechVoice}
}

// Synthesize renders text to audio bytes.
func (s *SpeechClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.model),
		Input: text,
		Voice: openai.SpeechVoice(s.voice),
	})
	if err != nil {
		return nil, apperrors.Submission(err, "speech synthesis")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, apperrors.Fetch(err, "synthesized audio")
	}
	if len(audio) == 0 {
		return nil, apperrors.Provider("speech synthesis", "empty audio returned")
	}
	return audio, nil
}
