// Package observability provides formatted summaries for the build commands.
package observability

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-site/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted summary output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintBuildReport outputs one line per locale with its page and PDF status.
func (p *Printer) PrintBuildReport(report *pipeline.Report, root string) {
	if report == nil || len(report.Locales) == 0 {
		return
	}

	var sb strings.Builder
	for _, l := range report.Locales {
		sb.WriteString(fmt.Sprintf("%-4s %s\n", l.Locale, relative(root, l.HTMLPath)))
		if l.PDFPath != "" {
			sb.WriteString(fmt.Sprintf("     PDF: %s\n", filepath.Base(l.PDFPath)))
		} else {
			sb.WriteString("     PDF: not exported\n")
		}
	}
	if report.LandingPath != "" {
		sb.WriteString(fmt.Sprintf("\nLanding: %s\n", relative(root, report.LandingPath)))
	}
	sb.WriteString(fmt.Sprintf("PDFs: %d/%d", report.PDFCount(), len(report.Locales)))

	p.printBox("RESUME BUILD", sb.String())
}

// PrintVerifyReport outputs validated PDFs followed by the first problems found.
func (p *Printer) PrintVerifyReport(report *pipeline.VerifyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	ids := make([]string, 0, len(report.PDFs))
	for id := range report.PDFs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		info := report.PDFs[id]
		sb.WriteString(fmt.Sprintf("%-4s %d page(s), %d bytes\n", id, info.Pages, info.Size))
	}

	if report.OK() {
		sb.WriteString("No problems found")
		p.printBox("SITE CHECK", sb.String())
		return
	}

	if len(ids) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Problems: %d\n", len(report.Problems)))
	count := min(len(report.Problems), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", report.Problems[i]))
	}
	if len(report.Problems) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Problems)-maxItemsToShow))
	}

	p.printBox("SITE CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

func relative(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
