package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goopenai "github.com/sashabaranov/go-openai"

	"vidglobe/internal/api/server"
	v1routes "vidglobe/internal/api/v1/routes"
	"vidglobe/internal/api/v1/services"
	"vidglobe/internal/app/api"
	"vidglobe/internal/app/api/elevenlabs"
	openaiapi "vidglobe/internal/app/api/openai"
	"vidglobe/internal/app/pipeline"
	"vidglobe/internal/app/repository"
	"vidglobe/internal/app/repository/pg"
	"vidglobe/internal/app/repository/sqlite"
	"vidglobe/internal/app/storage"
	"vidglobe/internal/config"
)

// provideVideoDAO selects the record store backend from configuration.
func provideVideoDAO(cfg *config.Config) (repository.VideoDAO, func(), error) {
	switch cfg.Database.Driver {
	case "postgres":
		dao, err := pg.NewPostgresVideoDAO(cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return dao, func() { _ = dao.Close() }, nil
	case "sqlite":
		dao := sqlite.NewSQLiteVideoDAO(cfg.Database.Path)
		return dao, func() { _ = dao.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func provideObjectStore(cfg *config.Config) (storage.ObjectStore, error) {
	return storage.NewMinioObjectStore(cfg.Storage)
}

func provideOpenAIClient(cfg *config.Config) *goopenai.Client {
	return openaiapi.NewClient(cfg.OpenAI)
}

func provideSummarizer(client *goopenai.Client, cfg *config.Config) api.Summarizer {
	return openaiapi.NewChatSummarizer(client, cfg.OpenAI)
}

func provideChatCompleter(client *goopenai.Client, cfg *config.Config) api.ChatCompleter {
	return openaiapi.NewVideoChat(client, cfg.OpenAI)
}

func provideDubber(cfg *config.Config) api.Dubber {
	return elevenlabs.NewDubbingClient(cfg.ElevenLabs)
}

func provideMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func providePipelineMetrics(registry *prometheus.Registry) *pipeline.Metrics {
	return pipeline.NewMetrics(registry)
}

func provideServiceContainer(
	videoService services.VideoService,
	chatService services.ChatService,
	exportService services.ExportService,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		VideoService:  videoService,
		ChatService:   chatService,
		ExportService: exportService,
	}
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Environment: cfg.Server.Environment,
	}
}
