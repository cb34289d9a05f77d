package pdf

import (
	"context"
	"os"
)

// CLIBackend is the renderer-provided export subcommand.
type CLIBackend interface {
	Export(ctx context.Context, source, out string) error
}

// CLIExporter exports through the external renderer against the resume JSON.
type CLIExporter struct {
	Backend CLIBackend
}

// Export runs the renderer's export command and checks the file it wrote.
func (e *CLIExporter) Export(ctx context.Context, job Job) error {
	if err := e.Backend.Export(ctx, job.Source, job.Output); err != nil {
		return &ExportError{Locale: job.Locale, Message: "renderer export failed", Cause: err}
	}
	if _, err := Check(job.Output); err != nil {
		_ = os.Remove(job.Output)
		return &ExportError{Locale: job.Locale, Message: "renderer wrote an unusable PDF", Cause: err}
	}
	return nil
}
