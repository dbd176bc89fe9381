package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vidglobe/internal/app"
	"vidglobe/internal/config"
)

var configPath string

// Cmd starts the HTTP API server.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the VidGlobe API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			slog.Error("Invalid configuration", "error", err)
			os.Exit(1)
		}

		logger := newLogger(cfg)
		srv, cleanup, err := app.InitializeServer(cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize server", "error", err)
			os.Exit(1)
		}
		defer cleanup()

		if err := srv.Start(); err != nil {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		// Give in-flight processing runs a chance to finish their
		// terminal status write.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	},
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Server.Environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
}
