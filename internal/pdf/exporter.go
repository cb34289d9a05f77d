package pdf

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-site/internal/config"
)

// Job describes one locale's export.
type Job struct {
	Locale   string
	Source   string // resume JSON, used by the CLI strategy
	HTMLPath string // patched page, used by the browser strategy
	Output   string
}

// Exporter produces a PDF for a job. Callers treat failures as non-fatal.
type Exporter interface {
	Export(ctx context.Context, job Job) error
}

// Strategy names accepted by NewExporter.
const (
	StrategyBrowser = config.PDFStrategyBrowser
	StrategyCLI     = config.PDFStrategyCLI
)

// NewExporter selects an exporter by strategy name.
func NewExporter(strategy string, cli CLIBackend, browser *BrowserExporter) (Exporter, error) {
	switch strategy {
	case StrategyBrowser:
		if browser == nil {
			browser = NewBrowserExporter()
		}
		return browser, nil
	case StrategyCLI:
		if cli == nil {
			return nil, fmt.Errorf("pdf strategy %q requires a renderer", strategy)
		}
		return &CLIExporter{Backend: cli}, nil
	default:
		return nil, fmt.Errorf("unknown pdf strategy %q", strategy)
	}
}
