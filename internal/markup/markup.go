// Package markup renders question and explanation text for the terminal.
package markup

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns service-provided text into terminal output that fits in
// width columns.
type Renderer interface {
	Render(text string, width int) string
}

// Plain passes text through untouched.
type Plain struct{}

func (Plain) Render(text string, _ int) string { return text }

// Glamour renders Markdown with a glamour style. Renderers are built lazily
// per wrap width and reused.
type Glamour struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = "dark"

// NewGlamour creates a Markdown renderer using the named glamour style
// ("dark", "light", "notty", ...).
func NewGlamour(style string) *Glamour {
	if style == "" {
		style = DefaultStyle
	}
	return &Glamour{style: style, renderers: map[int]*glamour.TermRenderer{}}
}

// Render returns text rendered as Markdown. Any rendering failure yields
// the raw text.
func (g *Glamour) Render(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	r, err := g.renderer(width)
	if err != nil {
		return text
	}
	g.mu.Lock()
	out, err := r.Render(text)
	g.mu.Unlock()
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

func (g *Glamour) renderer(width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}

// New returns Plain when plain is set and a glamour renderer otherwise.
func New(style string, plain bool) Renderer {
	if plain {
		return Plain{}
	}
	return NewGlamour(style)
}
