// Package main provides the entry point for the resume site build.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_site",
	Short: "Build the localized resume site",
	Long: "Renders each resume locale to HTML with the configured theme, patches the page, exports a PDF, " +
		"injects the language toolbar and writes the landing redirect page.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func main() {
	// Load .env file if it exists; the renderer inherits it
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSite reads the embedded site table rooted at the working directory.
func loadSite() (*config.Site, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	site, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}
	return site, nil
}
