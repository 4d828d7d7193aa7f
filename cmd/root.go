package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/videochef/recipe-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recipe-api",
	Short: "Recipe extraction API server",
	Long: `Recipe Extraction API - turns social media cooking videos into recipes

Give it a TikTok, Instagram, YouTube or Facebook video URL and it fetches
the speech transcript, extracts a structured bilingual (English/Hebrew)
recipe from it and stores the result per user.

Features:
  • Share-link resolution and platform classification
  • Two-tier transcript retrieval (captions, then AI transcription)
  • Structured recipe extraction with schema validation
  • Embed markup and thumbnail enrichment
  • Per-user recipe storage with cursor pagination`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help don't touch config, so they skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
