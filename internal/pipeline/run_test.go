package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/landing"
	"github.com/jonathan/resume-site/internal/patch"
	"github.com/jonathan/resume-site/internal/pdf"
	"github.com/jonathan/resume-site/internal/pdf/pdftest"
	"github.com/jonathan/resume-site/internal/pipeline/steps"
	"github.com/jonathan/resume-site/internal/toolbar"
)

const themeHTML = `<!doctype html>
<html>
<head>
<style>
:root{color-scheme: light dark}
@media (prefers-color-scheme: dark){:root{--color-primary:#eee}}
</style>
</head>
<body>
<h3>Бакалавр по направлению Прикладная информатика</h3>
<h3>Bachelor's degree in Computer Science</h3>
</body>
</html>`

type fakeRenderer struct {
	html    string
	failOn  string
	sources []string
}

func (r *fakeRenderer) Render(_ context.Context, source, out string) error {
	r.sources = append(r.sources, filepath.Base(source))
	if r.failOn != "" && strings.Contains(source, r.failOn) {
		return errors.New("exit status 1")
	}
	return os.WriteFile(out, []byte(r.html), 0644)
}

type fakeExporter struct {
	fail  map[string]bool
	seen  map[string]string
	calls []string
}

func (e *fakeExporter) Export(_ context.Context, job pdf.Job) error {
	e.calls = append(e.calls, job.Locale)
	if e.seen == nil {
		e.seen = map[string]string{}
	}
	content, err := os.ReadFile(job.HTMLPath)
	if err != nil {
		return err
	}
	e.seen[job.Locale] = string(content)

	if e.fail[job.Locale] {
		return &pdf.ExportError{Locale: job.Locale, Message: "browser rendering failed", Cause: errors.New("chrome not found")}
	}
	return os.WriteFile(job.Output, pdftest.Minimal(), 0644)
}

func newOptions(t *testing.T) (RunOptions, *fakeRenderer, *fakeExporter, *bytes.Buffer) {
	t.Helper()

	site, err := config.Load(t.TempDir())
	require.NoError(t, err)

	renderer := &fakeRenderer{html: themeHTML}
	exporter := &fakeExporter{fail: map[string]bool{}}
	var out bytes.Buffer

	return RunOptions{Site: site, Renderer: renderer, Exporter: exporter, Out: &out}, renderer, exporter, &out
}

func htmlFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestRun_EndToEnd(t *testing.T) {
	opts, renderer, exporter, out := newOptions(t)
	site := opts.Site

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"en/index.html", "index.html", "ru/index.html"}, htmlFiles(t, site.OutputPath()))
	assert.Equal(t, 2, report.PDFCount())
	assert.True(t, report.Verify.OK(), "problems: %v", report.Verify.Problems)
	assert.Equal(t, []string{"resume.ru.json", "resume.en.json"}, renderer.sources)
	assert.Equal(t, []string{"ru", "en"}, exporter.calls)

	for _, l := range site.Locales {
		content, err := os.ReadFile(site.IndexPath(l.ID))
		require.NoError(t, err)
		page := string(content)

		assert.False(t, patch.HasDarkScheme(page))
		assert.Equal(t, 1, strings.Count(page, `id="`+toolbar.MarkerID+`"`))
		for _, phrase := range l.StripPhrases {
			assert.NotContains(t, page, phrase)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		require.NoError(t, err)
		active := doc.Find("#" + toolbar.MarkerID + " a.toolbar-lang.active")
		require.Equal(t, 1, active.Length())
		href, _ := active.Attr("href")
		assert.Equal(t, "../"+l.ID+"/", href)

		assert.FileExists(t, site.PDFPath(l))
	}

	landingPage, err := os.ReadFile(site.LandingPath())
	require.NoError(t, err)
	assert.Contains(t, string(landingPage), "window.location.replace")
	assert.Contains(t, string(landingPage), "path = 'ru'")
	assert.Contains(t, string(landingPage), "path = 'en'")

	assert.Contains(t, out.String(), "Resume build done: docs/resume/{ru,en}/")
	assert.Contains(t, out.String(), "Landing: docs/resume/index.html")
	assert.NotContains(t, out.String(), "Warning:")
}

func TestRun_ExporterSeesPatchedPageWithoutToolbar(t *testing.T) {
	opts, _, exporter, _ := newOptions(t)

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	for _, id := range []string{"ru", "en"} {
		page := exporter.seen[id]
		assert.False(t, patch.HasDarkScheme(page), id)
		assert.NotContains(t, page, toolbar.MarkerID, id)
		assert.Contains(t, page, ".tag-list{", id)
	}
}

func TestRun_PDFFailureIsNotFatal(t *testing.T) {
	opts, _, exporter, out := newOptions(t)
	exporter.fail["ru"] = true
	site := opts.Site

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, report.Locales, 2)
	assert.Equal(t, "ru", report.Locales[0].Locale)
	assert.Error(t, report.Locales[0].PDFErr)
	assert.Empty(t, report.Locales[0].PDFPath)
	assert.NoError(t, report.Locales[1].PDFErr)
	assert.Equal(t, 1, report.PDFCount())

	assert.Contains(t, out.String(), "Warning: PDF export failed for ru")
	assert.FileExists(t, site.LandingPath())
	assert.FileExists(t, site.IndexPath("ru"))
	assert.FileExists(t, site.IndexPath("en"))

	ru, _ := site.Locale("ru")
	assert.NoFileExists(t, site.PDFPath(ru))

	require.False(t, report.Verify.OK())
	assert.Equal(t, "ru", report.Verify.Problems[0].Locale)
	assert.True(t, report.Verify.Problems[0].PDF)

	assert.Equal(t, 1, strings.Count(out.String(), "Warning:"), out.String())
}

func TestRun_WarnsAboutPDFRemovedAfterExport(t *testing.T) {
	opts, _, _, out := newOptions(t)
	site := opts.Site
	en, _ := site.Locale("en")

	// An exporter that reports success but leaves no file behind.
	opts.Exporter = exporterFunc(func(_ context.Context, job pdf.Job) error {
		if job.Locale == en.ID {
			return nil
		}
		return os.WriteFile(job.Output, pdftest.Minimal(), 0644)
	})

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.NoError(t, report.Locales[1].PDFErr)
	assert.Contains(t, out.String(), "Warning: [en] PDF "+en.PDFFileName+" is missing or invalid")
}

type exporterFunc func(ctx context.Context, job pdf.Job) error

func (f exporterFunc) Export(ctx context.Context, job pdf.Job) error {
	return f(ctx, job)
}

func TestRun_AllPDFsFail(t *testing.T) {
	opts, _, exporter, _ := newOptions(t)
	exporter.fail["ru"] = true
	exporter.fail["en"] = true

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 0, report.PDFCount())
	assert.FileExists(t, report.LandingPath)
	assert.Equal(t, []string{"en/index.html", "index.html", "ru/index.html"}, htmlFiles(t, opts.Site.OutputPath()))
}

func TestRun_RenderFailureIsFatal(t *testing.T) {
	opts, renderer, exporter, _ := newOptions(t)
	renderer.failOn = "resume.en.json"
	site := opts.Site

	report, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Nil(t, report)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, steps.RenderHTML, stepErr.Step)
	assert.Equal(t, "en", stepErr.Locale)

	assert.Equal(t, []string{"ru"}, exporter.calls)
	assert.NoFileExists(t, site.LandingPath())
}

func TestRun_DirectoryFailureIsFatal(t *testing.T) {
	opts, renderer, _, _ := newOptions(t)

	blocker := filepath.Join(opts.Site.Root, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	_, err := Run(context.Background(), opts)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, steps.PrepareDir, stepErr.Step)
	assert.Empty(t, renderer.sources)
}

func TestRun_MissingStyleMarkerIsFatal(t *testing.T) {
	opts, renderer, exporter, _ := newOptions(t)
	renderer.html = `<html><body>unstyled</body></html>`

	_, err := Run(context.Background(), opts)
	require.Error(t, err)

	var markerErr *patch.MarkerError
	assert.ErrorAs(t, err, &markerErr)
	assert.Empty(t, exporter.calls)
}

func TestRun_OverwritesLanding(t *testing.T) {
	opts, _, _, _ := newOptions(t)
	site := opts.Site

	require.NoError(t, os.MkdirAll(site.OutputPath(), 0755))
	require.NoError(t, os.WriteFile(site.LandingPath(), []byte("stale"), 0644))

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	content, err := os.ReadFile(site.LandingPath())
	require.NoError(t, err)
	expected, err := landing.Render(site)
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
}

func TestRun_RepeatedBuildInjectsOnce(t *testing.T) {
	opts, _, _, _ := newOptions(t)

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)
	_, err = Run(context.Background(), opts)
	require.NoError(t, err)

	content, err := os.ReadFile(opts.Site.IndexPath("en"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), `id="`+toolbar.MarkerID+`"`))
}

func TestRun_Progress(t *testing.T) {
	opts, _, exporter, _ := newOptions(t)
	exporter.fail["en"] = true

	var events []ProgressEvent
	opts.OnProgress = func(e ProgressEvent) { events = append(events, e) }

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, steps.WriteLanding, events[len(events)-1].Step)

	var skipped []ProgressEvent
	for _, e := range events {
		if strings.HasPrefix(e.Message, "Skipped") {
			skipped = append(skipped, e)
		}
	}
	require.Len(t, skipped, 1)
	assert.Equal(t, "en", skipped[0].Locale)
	assert.Equal(t, steps.ExportPDF, skipped[0].Step)
}

func TestRun_RequiresDependencies(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{})
	assert.Error(t, err)

	opts, _, _, _ := newOptions(t)
	opts.Exporter = nil
	_, err = Run(context.Background(), opts)
	assert.Error(t, err)
}

func TestWriteLanding(t *testing.T) {
	site, err := config.Load(t.TempDir())
	require.NoError(t, err)

	path, err := WriteLanding(site)
	require.NoError(t, err)
	assert.Equal(t, site.LandingPath(), path)
	assert.FileExists(t, path)
}

func TestVerify_EmptySite(t *testing.T) {
	site, err := config.Load(t.TempDir())
	require.NoError(t, err)

	report := Verify(site)
	assert.False(t, report.OK())
	assert.Empty(t, report.PDFs)

	var messages []string
	for _, p := range report.Problems {
		messages = append(messages, p.String())
	}
	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, "[ru] page")
	assert.Contains(t, joined, "[en] page")
	assert.Contains(t, joined, "landing page is missing")
}

func TestStepError_Error(t *testing.T) {
	err := &StepError{Step: steps.RenderHTML, Locale: "ru", Message: "Rendering HTML failed", Cause: errors.New("exit status 1")}
	assert.Equal(t, "build error: render_html [ru]: Rendering HTML failed: exit status 1", err.Error())
}
