package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	// DefaultStyle avoids glamour's auto style, which queries the terminal and can block.
	DefaultStyle = "dark"
	minWidth     = 20
)

var (
	termMu        sync.Mutex
	termRenderers = map[string]*glamour.TermRenderer{}
)

// Terminal renders markdown as ANSI text wrapped at width. Render failures fall back to the source.
func Terminal(src string, width int, style string) string {
	src = Source(src)
	if width < minWidth {
		width = minWidth
	}
	if style == "" {
		style = DefaultStyle
	}

	r, err := termRenderer(style, width)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}

func termRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)

	termMu.Lock()
	defer termMu.Unlock()

	if r := termRenderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	termRenderers[key] = r
	return r, nil
}
