// Package config provides the embedded locale table and site settings for the build.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// PDF export strategies.
const (
	PDFStrategyBrowser = "browser"
	PDFStrategyCLI     = "cli"
)

// Toolbar download control variants.
const (
	ToolbarLink   = "link"
	ToolbarButton = "button"
)

// IndexFile is the name of the page rendered into each locale directory.
const IndexFile = "index.html"

//go:embed site.json
var siteJSON []byte

// Locale describes one language variant of the resume.
type Locale struct {
	ID              string   `json:"id" validate:"required"`
	Source          string   `json:"source" validate:"required,endswith=.json"`
	PDFFileName     string   `json:"pdf" validate:"required,endswith=.pdf,excludesall=/\\"`
	Label           string   `json:"label" validate:"required"`
	DownloadLabel   string   `json:"download_label" validate:"required"`
	GeneratingLabel string   `json:"generating_label" validate:"required"`
	StripPhrases    []string `json:"strip_phrases,omitempty" validate:"dive,required"`
}

// Site holds everything the build needs. It is fixed at compile time.
type Site struct {
	Root          string   `json:"-"`
	Title         string   `json:"title" validate:"required"`
	Theme         string   `json:"theme" validate:"required"`
	Renderer      []string `json:"renderer" validate:"required,min=1,dive,required"`
	SourceDir     string   `json:"source_dir" validate:"required"`
	OutputDir     string   `json:"output_dir" validate:"required"`
	PDFStrategy   string   `json:"pdf_strategy" validate:"required,oneof=browser cli"`
	ToolbarStyle  string   `json:"toolbar_style" validate:"required,oneof=link button"`
	DefaultLocale string   `json:"default_locale" validate:"required"`
	Locales       []Locale `json:"locales" validate:"required,min=1,unique=ID,dive"`
}

// Load decodes and validates the embedded site table. Paths resolve against root.
func Load(root string) (*Site, error) {
	return Parse(siteJSON, root)
}

// Parse decodes and validates a site document.
func Parse(data []byte, root string) (*Site, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var site Site
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site JSON: %w", err)
	}
	if root == "" {
		root = "."
	}
	site.Root = root

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks struct constraints and the cross-field rules validator tags cannot express.
func (s *Site) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return &Error{Message: "invalid site table", Cause: err}
	}

	for _, l := range s.Locales {
		if _, err := language.Parse(l.ID); err != nil {
			return &Error{Message: fmt.Sprintf("locale %q is not a valid language tag", l.ID), Cause: err}
		}
	}

	if _, ok := s.Locale(s.DefaultLocale); !ok {
		return &Error{Message: fmt.Sprintf("default locale %q is not in the locale table", s.DefaultLocale)}
	}

	return nil
}

// Locale returns the locale with the given id.
func (s *Site) Locale(id string) (Locale, bool) {
	for _, l := range s.Locales {
		if l.ID == id {
			return l, true
		}
	}
	return Locale{}, false
}

// OutputPath is the absolute-or-relative output root, e.g. docs/resume.
func (s *Site) OutputPath() string {
	return filepath.Join(s.Root, s.OutputDir)
}

// LocaleDir is the output directory owned by one locale.
func (s *Site) LocaleDir(id string) string {
	return filepath.Join(s.OutputPath(), id)
}

// SourcePath is the resume JSON for a locale.
func (s *Site) SourcePath(l Locale) string {
	return filepath.Join(s.Root, s.SourceDir, l.Source)
}

// IndexPath is the rendered page for a locale.
func (s *Site) IndexPath(id string) string {
	return filepath.Join(s.LocaleDir(id), IndexFile)
}

// PDFPath is where a locale's PDF is written.
func (s *Site) PDFPath(l Locale) string {
	return filepath.Join(s.LocaleDir(l.ID), l.PDFFileName)
}

// LandingPath is the top-level redirect page.
func (s *Site) LandingPath() string {
	return filepath.Join(s.OutputPath(), IndexFile)
}

// Prefix returns the lowercase primary language subtag used to match browser languages.
func (l Locale) Prefix() string {
	tag, err := language.Parse(l.ID)
	if err != nil {
		return strings.ToLower(l.ID)
	}
	base, _ := tag.Base()
	return strings.ToLower(base.String())
}
