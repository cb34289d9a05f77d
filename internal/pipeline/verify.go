package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/patch"
	"github.com/jonathan/resume-site/internal/pdf"
	"github.com/jonathan/resume-site/internal/toolbar"
)

// Problem is one defect found in the built site.
type Problem struct {
	Locale  string
	Message string
	PDF     bool // the locale's PDF is missing or invalid
}

func (p Problem) String() string {
	if p.Locale == "" {
		return p.Message
	}
	return fmt.Sprintf("[%s] %s", p.Locale, p.Message)
}

// VerifyReport lists problems and the PDFs that passed validation.
type VerifyReport struct {
	Problems []Problem
	PDFs     map[string]*pdf.Info
}

// OK reports whether the site has no problems.
func (r *VerifyReport) OK() bool {
	return len(r.Problems) == 0
}

func (r *VerifyReport) add(locale, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Locale: locale, Message: fmt.Sprintf(format, args...)})
}

// Verify inspects the output tree: each locale page carries one toolbar with
// exactly one active link to itself and no dark scheme, its PDF exists and is
// valid, and the landing page redirects to every locale.
func Verify(site *config.Site) *VerifyReport {
	report := &VerifyReport{PDFs: map[string]*pdf.Info{}}

	for _, l := range site.Locales {
		verifyPage(report, site, l)

		info, err := pdf.Check(site.PDFPath(l))
		if err != nil {
			report.Problems = append(report.Problems, Problem{
				Locale:  l.ID,
				Message: fmt.Sprintf("PDF %s is missing or invalid; the download control will fall back: %v", l.PDFFileName, err),
				PDF:     true,
			})
			continue
		}
		report.PDFs[l.ID] = info
	}

	verifyLanding(report, site)
	return report
}

func verifyPage(report *VerifyReport, site *config.Site, l config.Locale) {
	path := site.IndexPath(l.ID)
	content, err := os.ReadFile(path)
	if err != nil {
		report.add(l.ID, "page %s is missing: %v", path, err)
		return
	}

	if patch.HasDarkScheme(string(content)) {
		report.add(l.ID, "page still declares a dark color scheme")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		report.add(l.ID, "page could not be parsed: %v", err)
		return
	}

	bars := doc.Find("#" + toolbar.MarkerID)
	if n := bars.Length(); n != 1 {
		report.add(l.ID, "expected one toolbar, found %d", n)
		return
	}

	active := bars.Find("a.toolbar-lang.active")
	if n := active.Length(); n != 1 {
		report.add(l.ID, "expected one active language link, found %d", n)
		return
	}
	if href, _ := active.Attr("href"); href != "../"+l.ID+"/" {
		report.add(l.ID, "active language link points to %q", href)
	}
}

func verifyLanding(report *VerifyReport, site *config.Site) {
	content, err := os.ReadFile(site.LandingPath())
	if err != nil {
		report.add("", "landing page is missing: %v", err)
		return
	}

	page := string(content)
	if !strings.Contains(page, "window.location.replace(") {
		report.add("", "landing page has no redirect script")
	}
	for _, l := range site.Locales {
		if !strings.Contains(page, `href="./`+l.ID+`/"`) {
			report.add("", "landing page does not link to %s", l.ID)
		}
	}
}
