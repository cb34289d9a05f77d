// Package landing renders the top-level page that redirects to a locale.
package landing

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/resume-site/internal/config"
)

type match struct {
	ID     string
	Prefix string
}

type entry struct {
	ID    string
	Label string
	PDF   string
}

type pageData struct {
	Title   string
	Lang    string
	Default string
	Matches []match
	Entries []entry
}

var pageTmpl = template.Must(template.New("landing").Parse(pageSource))

// Render builds the landing document for site.
func Render(site *config.Site) (string, error) {
	data := pageData{
		Title:   site.Title,
		Lang:    site.DefaultLocale,
		Default: site.DefaultLocale,
	}
	for _, l := range site.Locales {
		if l.ID != site.DefaultLocale {
			data.Matches = append(data.Matches, match{ID: l.ID, Prefix: l.Prefix()})
		}
		data.Entries = append(data.Entries, entry{ID: l.ID, Label: l.Label, PDF: l.PDFFileName})
	}

	var sb strings.Builder
	if err := pageTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute landing template: %w", err)
	}
	return sb.String(), nil
}

// PreferredLanguage mirrors the page script: the first of navigator.languages,
// navigator.language and navigator.userLanguage that is set, lowercased.
func PreferredLanguage(languages []string, language, userLanguage string) string {
	lang := ""
	switch {
	case len(languages) > 0 && languages[0] != "":
		lang = languages[0]
	case language != "":
		lang = language
	case userLanguage != "":
		lang = userLanguage
	}
	return strings.ToLower(lang)
}

// RedirectPath returns the relative path the page script navigates to.
func RedirectPath(site *config.Site, languages []string, language, userLanguage string) string {
	lang := PreferredLanguage(languages, language, userLanguage)
	path := site.DefaultLocale
	for _, l := range site.Locales {
		if l.ID == site.DefaultLocale {
			continue
		}
		if strings.HasPrefix(lang, l.Prefix()) {
			path = l.ID
			break
		}
	}
	return "./" + path + "/"
}
