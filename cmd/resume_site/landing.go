package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/pipeline"
)

var landingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Rewrite the landing redirect page",
	Long:  "Regenerates the landing page from the locale table without rebuilding any locale.",
	Args:  cobra.NoArgs,
	RunE:  runLanding,
}

func init() {
	rootCmd.AddCommand(landingCmd)
}

func runLanding(cmd *cobra.Command, _ []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	path, err := pipeline.WriteLanding(site)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(site.Root, path)
	if err != nil {
		rel = path
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Landing: %s\n", filepath.ToSlash(rel))
	return nil
}
