//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"vidglobe/internal/api/server"
	"vidglobe/internal/api/v1/services"
	"vidglobe/internal/app/pipeline"
	"vidglobe/internal/config"
)

// InitializeServer assembles the full API server from configuration.
func InitializeServer(cfg *config.Config, logger *slog.Logger) (*server.Server, func(), error) {
	wire.Build(
		provideVideoDAO,
		provideObjectStore,
		provideOpenAIClient,
		provideSummarizer,
		provideChatCompleter,
		provideDubber,
		provideMetricsRegistry,
		providePipelineMetrics,
		pipeline.NewOrchestrator,
		wire.Bind(new(services.Processor), new(*pipeline.Orchestrator)),
		services.NewVideoService,
		services.NewChatService,
		services.NewExportService,
		provideServiceContainer,
		provideServerConfig,
		server.NewServer,
	)
	return nil, nil, nil
}

// InitializeOrchestrator assembles just the processing pipeline, for
// CLI-triggered runs.
func InitializeOrchestrator(cfg *config.Config, logger *slog.Logger) (*pipeline.Orchestrator, func(), error) {
	wire.Build(
		provideVideoDAO,
		provideObjectStore,
		provideOpenAIClient,
		provideSummarizer,
		provideDubber,
		provideMetricsRegistry,
		providePipelineMetrics,
		pipeline.NewOrchestrator,
	)
	return nil, nil, nil
}

// InitializeExporter assembles the record exporter for the CLI.
func InitializeExporter(cfg *config.Config) (services.ExportService, func(), error) {
	wire.Build(
		provideVideoDAO,
		services.NewExportService,
	)
	return nil, nil, nil
}
