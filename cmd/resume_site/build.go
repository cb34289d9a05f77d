package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/pdf"
	"github.com/jonathan/resume-site/internal/pipeline"
	"github.com/jonathan/resume-site/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every locale and the landing page",
	Long: "Runs the full build: HTML render, patch, PDF export, toolbar injection per locale, " +
		"then the landing page. PDF export failures are reported as warnings.",
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	resumed := render.NewResumed(render.NewExecRunner(site.Root), site.Renderer, site.Theme)
	exporter, err := pdf.NewExporter(site.PDFStrategy, resumed, nil)
	if err != nil {
		return fmt.Errorf("failed to configure pdf export: %w", err)
	}

	out := cmd.OutOrStdout()
	report, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		Site:     site,
		Renderer: resumed,
		Exporter: exporter,
		Out:      out,
	})
	if err != nil {
		return err
	}

	// The summary lines stay last on stdout.
	observability.NewPrinter(cmd.ErrOrStderr()).PrintBuildReport(report, site.Root)
	return nil
}
