package patch

import (
	"html"
	"regexp"
	"strings"
)

// StyleClose is the marker the override block is inserted before.
const StyleClose = "</style>"

var (
	// The leading group keeps prefers-color-scheme media features out of the match.
	colorSchemeRe = regexp.MustCompile(`(^|[^-\w])color-scheme\s*:\s*[^;}"'<>()]*\bdark\b[^;}"'<>()]*`)
	darkMediaRe   = regexp.MustCompile(`@media[^{]*\(\s*prefers-color-scheme\s*:\s*dark\s*\)[^{]*\{`)
	metaRe        = regexp.MustCompile(`(?i)<meta\b[^>]*>`)
	metaNameRe    = regexp.MustCompile(`(?i)\bname\s*=\s*["']?color-scheme["'\s/>]`)
	metaContentRe = regexp.MustCompile(`(?i)\bcontent\s*=\s*["'][^"']*\bdark\b`)
)

const lightMeta = `<meta name="color-scheme" content="light">`

// Patch applies the fixed substitutions to rendered theme HTML:
// dark color-scheme declarations are neutralized, each strip phrase is removed,
// and the override stylesheet is inserted before the single </style>.
func Patch(doc string, strip []string) (string, error) {
	out := NeutralizeDarkScheme(doc)
	out = StripPhrases(out, strip)
	return InsertOverrides(out)
}

// NeutralizeDarkScheme forces a light appearance on screen and in print.
func NeutralizeDarkScheme(doc string) string {
	doc = darkMediaRe.ReplaceAllString(doc, "@media not all {")
	doc = colorSchemeRe.ReplaceAllString(doc, "${1}color-scheme: light")
	return metaRe.ReplaceAllStringFunc(doc, func(tag string) string {
		if isDarkMeta(tag) {
			return lightMeta
		}
		return tag
	})
}

// isDarkMeta reports whether tag is a color-scheme meta offering dark, in either attribute order.
func isDarkMeta(tag string) bool {
	return metaNameRe.MatchString(tag) && metaContentRe.MatchString(tag)
}

// HasDarkScheme reports whether any dark color-scheme declaration remains.
func HasDarkScheme(doc string) bool {
	if colorSchemeRe.MatchString(doc) || darkMediaRe.MatchString(doc) {
		return true
	}
	for _, tag := range metaRe.FindAllString(doc, -1) {
		if isDarkMeta(tag) {
			return true
		}
	}
	return false
}

// StripPhrases removes each phrase, in its literal and HTML-escaped forms.
func StripPhrases(doc string, phrases []string) string {
	for _, p := range phrases {
		if p == "" {
			continue
		}
		doc = strings.ReplaceAll(doc, p, "")
		if escaped := html.EscapeString(p); escaped != p {
			doc = strings.ReplaceAll(doc, escaped, "")
		}
	}
	return doc
}

// InsertOverrides places OverrideCSS immediately before </style>.
// Already patched documents are returned unchanged.
func InsertOverrides(doc string) (string, error) {
	if strings.Contains(doc, overrideSentinel) {
		return doc, nil
	}
	if n := strings.Count(doc, StyleClose); n != 1 {
		return "", &MarkerError{Marker: StyleClose, Count: n}
	}
	return strings.Replace(doc, StyleClose, OverrideCSS+StyleClose, 1), nil
}
