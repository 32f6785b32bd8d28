// Package markdown renders entry content for browsers and terminals.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Placeholder is rendered for entries without content.
const Placeholder = "_No detailed notes available for this topic yet._"

// Raw HTML in content is dropped: html.WithUnsafe is not set.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// Source returns src, or Placeholder when src is blank.
func Source(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return Placeholder
	}
	return src
}

// HTML converts markdown to an HTML fragment.
func HTML(src string) string {
	src = Source(src)
	var b bytes.Buffer
	if err := htmlRenderer.Convert([]byte(src), &b); err != nil {
		return "<pre>" + html.EscapeString(src) + "</pre>"
	}
	return b.String()
}
