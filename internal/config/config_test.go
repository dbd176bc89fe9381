package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaults()
	cfg.OpenAI.APIKey = "sk-test-key"
	cfg.ElevenLabs.APIKey = "el-test-key"
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.ElevenLabs.PollInterval)
	assert.Equal(t, 60, cfg.ElevenLabs.MaxPollAttempts)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
database:
  driver: postgres
  dsn: postgres://localhost/vidglobe
storage:
  bucket: media
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/vidglobe", cfg.Database.DSN)
	assert.Equal(t, "media", cfg.Storage.Bucket)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "sk-from-env", cfg.OpenAI.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		errorContains string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:          "missing_openai_key",
			mutate:        func(c *Config) { c.OpenAI.APIKey = "" },
			errorContains: "OPENAI_API_KEY is required",
		},
		{
			name:          "malformed_openai_key",
			mutate:        func(c *Config) { c.OpenAI.APIKey = "not-a-key" },
			errorContains: "must start with 'sk-'",
		},
		{
			name:          "missing_elevenlabs_key",
			mutate:        func(c *Config) { c.ElevenLabs.APIKey = "" },
			errorContains: "ELEVENLABS_API_KEY is required",
		},
		{
			name: "postgres_without_dsn",
			mutate: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.DSN = ""
			},
			errorContains: "DATABASE_URL is required",
		},
		{
			name:          "sqlite_without_path",
			mutate:        func(c *Config) { c.Database.Path = "" },
			errorContains: "SQLITE_PATH is required",
		},
		{
			name:          "unknown_driver",
			mutate:        func(c *Config) { c.Database.Driver = "oracle" },
			errorContains: "unsupported database driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.errorContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadEnv())
}
