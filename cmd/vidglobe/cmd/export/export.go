package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/app"
	"vidglobe/internal/config"
)

var (
	configPath string
	format     string
	status     string
	output     string
	limit      int
)

// Cmd dumps video records to a local file.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export video records to xlsx, csv, or json",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}

		exporter, cleanup, err := app.InitializeExporter(cfg)
		if err != nil {
			slog.Error("Failed to initialize exporter", "error", err)
			os.Exit(1)
		}
		defer cleanup()

		if output == "" {
			output = "videos." + format
		}
		file, err := os.Create(output)
		if err != nil {
			slog.Error("Failed to create output file", "path", output, "error", err)
			os.Exit(1)
		}
		defer file.Close()

		query := dto.ExportQuery{Format: format, Status: status, Limit: limit}
		if err := exporter.ExportVideos(context.Background(), query, file); err != nil {
			slog.Error("Export failed", "error", err)
			os.Exit(1)
		}

		fmt.Printf("Exported video records to %s\n", output)
	},
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	Cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "export format: xlsx, csv, or json")
	Cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 1000, "maximum records to export")
}
