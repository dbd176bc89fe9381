package process

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vidglobe/internal/app"
	"vidglobe/internal/config"
)

var (
	configPath     string
	targetLanguage string
)

// Cmd runs the translation pipeline for one video record from the CLI.
var Cmd = &cobra.Command{
	Use:   "process <video-id>",
	Short: "Run the translation pipeline for one video",
	Long: `Runs the dubbing pipeline for a pending or failed video record and
blocks until it reaches a terminal state. The run may take up to the
dubbing polling deadline (five minutes by default).`,
	Args: cobra.ExactArgs(1),
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

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		orchestrator, cleanup, err := app.InitializeOrchestrator(cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize pipeline", "error", err)
			os.Exit(1)
		}
		defer cleanup()

		video, err := orchestrator.Process(context.Background(), args[0], targetLanguage)
		if err != nil {
			logger.Error("Processing failed", "video_id", args[0], "error", err)
			os.Exit(1)
		}

		fmt.Printf("Video %s processed\n", video.ID)
		fmt.Printf("  status:         %s\n", video.Status)
		fmt.Printf("  translated_url: %s\n", video.TranslatedURL)
		fmt.Printf("  summary:        %s\n", video.Summary)
	},
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	Cmd.Flags().StringVarP(&targetLanguage, "target-language", "t", "", "override the record's target language")
}
