package openai

import (
	"github.com/sashabaranov/go-openai"
)

// Config configures the OpenAI-backed capabilities. BaseURL is
// overridable for tests and proxies.
type Config struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	ChatModel    string `yaml:"chat_model"`
	WhisperModel string `yaml:"whisper_model"`
	SpeechModel  string `yaml:"speech_model"`
	SpeechVoice  string `yaml:"speech_voice"`
}

func (c Config) withDefaults() Config {
	if c.ChatModel == "" {
		c.ChatModel = openai.GPT4oMini
	}
	if c.WhisperModel == "" {
		c.WhisperModel = openai.Whisper1
	}
	if c.SpeechModel == "" {
		c.SpeechModel = string(openai.TTSModel1)
	}
	if c.SpeechVoice == "" {
		c.SpeechVoice = string(openai.VoiceAlloy)
	}
	return c
}

// NewClient builds the shared API client from explicit configuration.
func NewClient(config Config) *openai.Client {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}
