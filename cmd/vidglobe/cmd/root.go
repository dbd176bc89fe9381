package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"vidglobe/cmd/vidglobe/cmd/export"
	"vidglobe/cmd/vidglobe/cmd/process"
	"vidglobe/cmd/vidglobe/cmd/serve"
	"vidglobe/cmd/vidglobe/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vidglobe",
	Short: "AI-powered video translation service",
	Long: `Transform videos into any language with AI-powered translation.
- Upload a video or supply a source URL
- Trigger the dubbing pipeline for a chosen target language
- Query records, summaries, and dubbed audio over the HTTP API`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
