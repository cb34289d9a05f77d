package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/pipeline"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the built site",
	Long: "Checks that every locale page has a single toolbar with its own language active, " +
		"that each PDF exists and is valid, and that the landing page links every locale.",
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	report := pipeline.Verify(site)
	observability.NewPrinter(cmd.OutOrStdout()).PrintVerifyReport(report)

	if !report.OK() {
		return fmt.Errorf("verification found %d problem(s)", len(report.Problems))
	}
	return nil
}
