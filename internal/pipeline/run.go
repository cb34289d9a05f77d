// Package pipeline provides the high-level orchestration for the resume site build.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/landing"
	"github.com/jonathan/resume-site/internal/patch"
	"github.com/jonathan/resume-site/internal/pdf"
	"github.com/jonathan/resume-site/internal/pipeline/steps"
	"github.com/jonathan/resume-site/internal/toolbar"
)

// HTMLRenderer turns a resume JSON file into a themed HTML page.
type HTMLRenderer interface {
	Render(ctx context.Context, source, out string) error
}

// ProgressEvent represents a progress update during the build
type ProgressEvent struct {
	Step    string `json:"step"`
	Locale  string `json:"locale,omitempty"`
	Message string `json:"message"`
}

// ProgressCallback is called when build progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the build
type RunOptions struct {
	Site       *config.Site
	Renderer   HTMLRenderer
	Exporter   pdf.Exporter
	Out        io.Writer // progress and warnings; os.Stdout when nil
	Verbose    bool
	OnProgress ProgressCallback
}

// LocaleResult records what the build produced for one locale.
type LocaleResult struct {
	Locale   string
	HTMLPath string
	PDFPath  string // empty when export failed
	PDFErr   error
}

// Report summarizes a completed build.
type Report struct {
	Locales     []LocaleResult
	LandingPath string
	Verify      *VerifyReport
}

// PDFCount returns how many locales have a PDF.
func (r *Report) PDFCount() int {
	n := 0
	for _, l := range r.Locales {
		if l.PDFPath != "" {
			n++
		}
	}
	return n
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, locale, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Locale: locale, Message: message})
	}
}

// Run builds every locale in table order, then the landing page.
// Only PDF export failures are tolerated; any other error aborts the build.
func Run(ctx context.Context, opts RunOptions) (*Report, error) {
	if opts.Site == nil {
		return nil, errors.New("site configuration is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("renderer is required")
	}
	if opts.Exporter == nil {
		return nil, errors.New("pdf exporter is required")
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	out := opts.Out
	site := opts.Site

	// Directories first: no later phase can run without them.
	for _, l := range site.Locales {
		if err := prepareDir(site, l); err != nil {
			return nil, err
		}
		emitProgress(&opts, steps.PrepareDir, l.ID, "Prepared "+site.LocaleDir(l.ID))
	}

	report := &Report{}
	for _, l := range site.Locales {
		result, err := buildLocale(ctx, &opts, l)
		if err != nil {
			return nil, err
		}
		report.Locales = append(report.Locales, result)
	}

	landingPath, err := WriteLanding(site)
	if err != nil {
		return nil, err
	}
	report.LandingPath = landingPath
	emitProgress(&opts, steps.WriteLanding, "", "Wrote "+landingPath)

	// Export failures were already reported by their step.
	failed := map[string]bool{}
	for _, r := range report.Locales {
		if r.PDFErr != nil {
			failed[r.Locale] = true
		}
	}
	report.Verify = Verify(site)
	for _, p := range report.Verify.Problems {
		if p.PDF && failed[p.Locale] {
			continue
		}
		_, _ = fmt.Fprintf(out, "Warning: %s\n", p)
	}

	ids := make([]string, 0, len(site.Locales))
	for _, l := range site.Locales {
		ids = append(ids, l.ID)
	}
	_, _ = fmt.Fprintf(out, "Resume build done: %s/{%s}/\n", filepath.ToSlash(site.OutputDir), strings.Join(ids, ","))
	_, _ = fmt.Fprintf(out, "Landing: %s\n", filepath.ToSlash(filepath.Join(site.OutputDir, config.IndexFile)))

	return report, nil
}

func prepareDir(site *config.Site, l config.Locale) error {
	dir := site.LocaleDir(l.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StepError{Step: steps.PrepareDir, Locale: l.ID, Message: "failed to create output directory " + dir, Cause: err}
	}
	return nil
}

func buildLocale(ctx context.Context, opts *RunOptions, l config.Locale) (LocaleResult, error) {
	site := opts.Site
	out := opts.Out
	source := site.SourcePath(l)
	htmlPath := site.IndexPath(l.ID)
	result := LocaleResult{Locale: l.ID, HTMLPath: htmlPath}

	completed := map[string]bool{steps.PrepareDir: true}
	total := len(steps.LocaleSteps)

	for i, stepName := range steps.LocaleSteps {
		def, err := steps.Lookup(stepName)
		if err != nil {
			return result, err
		}
		if err := steps.ValidateDependencies(completed, stepName); err != nil {
			return result, err
		}

		_, _ = fmt.Fprintf(out, "[%s] Step %d/%d: %s...\n", l.ID, i+1, total, def.Description)

		var stepErr error
		switch stepName {
		case steps.RenderHTML:
			stepErr = opts.Renderer.Render(ctx, source, htmlPath)
		case steps.PatchHTML:
			stepErr = rewrite(htmlPath, func(doc string) (string, error) {
				return patch.Patch(doc, l.StripPhrases)
			})
		case steps.ExportPDF:
			pdfPath := site.PDFPath(l)
			stepErr = opts.Exporter.Export(ctx, pdf.Job{
				Locale:   l.ID,
				Source:   source,
				HTMLPath: htmlPath,
				Output:   pdfPath,
			})
			if stepErr == nil {
				result.PDFPath = pdfPath
			}
		case steps.InjectToolbar:
			stepErr = rewrite(htmlPath, func(doc string) (string, error) {
				fragment, err := toolbar.Render(l, site.Locales, toolbar.Style(site.ToolbarStyle))
				if err != nil {
					return "", err
				}
				return toolbar.Inject(doc, fragment)
			})
		}

		if stepErr != nil {
			if def.Fatal {
				return result, &StepError{Step: stepName, Locale: l.ID, Message: def.Description + " failed", Cause: stepErr}
			}
			result.PDFErr = stepErr
			_, _ = fmt.Fprintf(out, "Warning: PDF export failed for %s (Chrome may be unavailable): %v\n", l.ID, stepErr)
			emitProgress(opts, stepName, l.ID, "Skipped: "+stepErr.Error())
			continue
		}

		completed[stepName] = true
		emitProgress(opts, stepName, l.ID, def.Description+" done")
	}

	return result, nil
}

// rewrite re-reads path, transforms it and writes it back.
func rewrite(path string, fn func(string) (string, error)) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	updated, err := fn(string(content))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteLanding renders the landing page and overwrites any previous one.
func WriteLanding(site *config.Site) (string, error) {
	page, err := landing.Render(site)
	if err != nil {
		return "", &StepError{Step: steps.WriteLanding, Message: "failed to render landing page", Cause: err}
	}

	path := site.LandingPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", &StepError{Step: steps.WriteLanding, Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return "", &StepError{Step: steps.WriteLanding, Message: "failed to write landing page", Cause: err}
	}
	return path, nil
}
