package toolbar

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/resume-site/internal/config"
)

// MarkerID is the id of the toolbar's root element.
const MarkerID = "resume-toolbar"

// BodyClose is the marker the fragment is inserted before.
const BodyClose = "</body>"

// Style selects the download control.
type Style string

const (
	// StyleLink is a plain link with a download attribute.
	StyleLink Style = config.ToolbarLink
	// StyleButton fetches the PDF and falls back to in-browser conversion.
	StyleButton Style = config.ToolbarButton
)

// HTML2PDFURL is loaded on demand when the pre-generated PDF is unavailable.
const HTML2PDFURL = "https://cdnjs.cloudflare.com/ajax/libs/html2pdf.js/0.10.1/html2pdf.bundle.min.js"

type langLink struct {
	ID     string
	Label  string
	Active bool
}

type fragmentData struct {
	MarkerID        string
	Style           Style
	PDF             string
	DownloadLabel   string
	GeneratingLabel string
	Links           []langLink
	ScriptURL       string
}

var fragmentTmpl = template.Must(template.New("toolbar").Parse(fragmentSource))

// Render builds the toolbar fragment for the current locale.
func Render(current config.Locale, all []config.Locale, style Style) (string, error) {
	if style != StyleLink && style != StyleButton {
		return "", fmt.Errorf("unknown toolbar style %q", style)
	}

	data := fragmentData{
		MarkerID:        MarkerID,
		Style:           style,
		PDF:             current.PDFFileName,
		DownloadLabel:   current.DownloadLabel,
		GeneratingLabel: current.GeneratingLabel,
		ScriptURL:       HTML2PDFURL,
	}
	found := false
	for _, l := range all {
		active := l.ID == current.ID
		found = found || active
		data.Links = append(data.Links, langLink{ID: l.ID, Label: l.Label, Active: active})
	}
	if !found {
		return "", fmt.Errorf("locale %q is not in the locale list", current.ID)
	}

	var sb strings.Builder
	if err := fragmentTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute toolbar template: %w", err)
	}
	return sb.String(), nil
}

// Inject inserts fragment immediately before the page's closing body tag.
func Inject(page, fragment string) (string, error) {
	if strings.Contains(page, `id="`+MarkerID+`"`) {
		return "", ErrAlreadyInjected
	}
	if n := strings.Count(page, BodyClose); n != 1 {
		return "", &MarkerError{Marker: BodyClose, Count: n}
	}
	return strings.Replace(page, BodyClose, fragment+"\n"+BodyClose, 1), nil
}
