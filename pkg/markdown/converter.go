// Package markdown renders model-generated markdown for web clients that
// request HTML output. The default API response keeps the provider's text
// verbatim; this conversion is opt-in via ?format=html.
package markdown

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// ToHTML converts markdown to HTML
func ToHTML(md string) string {
	if md == "" {
		return ""
	}

	html := string(blackfriday.Run([]byte(md), blackfriday.WithExtensions(blackfriday.CommonExtensions)))
	html = excessNewlines.ReplaceAllString(html, "\n\n")

	return strings.TrimSpace(html)
}
