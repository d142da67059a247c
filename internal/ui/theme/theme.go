package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named set of colors. Every domain plays in its own palette.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// DefaultName is the palette used outside of a game.
const DefaultName = "default"

var palettes = map[string]Palette{
	DefaultName: {
		Name:      DefaultName,
		Primary:   lipgloss.Color("#3B82F6"), // Board Blue
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#FACC15"), // Prize Gold
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	},
	"domain-go": {
		Name:      "domain-go",
		Primary:   lipgloss.Color("#00ADD8"), // Gopher Blue
		Secondary: lipgloss.Color("#5DC9E2"), // Light Blue
		Accent:    lipgloss.Color("#FDDD00"), // Yellow
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		BgDark:    lipgloss.Color("#0B1F2A"),
		BgCard:    lipgloss.Color("#12303F"),
		Border:    lipgloss.Color("#1F4B5E"),
	},
	"domain-k8s": {
		Name:      "domain-k8s",
		Primary:   lipgloss.Color("#326CE5"), // Helm Blue
		Secondary: lipgloss.Color("#8FB3F5"),
		Accent:    lipgloss.Color("#F97316"),
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#A5B4CB"),
		BgDark:    lipgloss.Color("#0E1630"),
		BgCard:    lipgloss.Color("#18244A"),
		Border:    lipgloss.Color("#2B3C6E"),
	},
	"domain-linux": {
		Name:      "domain-linux",
		Primary:   lipgloss.Color("#FCC624"), // Tux Yellow
		Secondary: lipgloss.Color("#A3E635"), // Terminal Green
		Accent:    lipgloss.Color("#F97316"),
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F5F5F4"),
		TextDim:   lipgloss.Color("#A8A29E"),
		BgDark:    lipgloss.Color("#1C1917"),
		BgCard:    lipgloss.Color("#292524"),
		Border:    lipgloss.Color("#44403C"),
	},
}

// Active colors. They change when a palette is applied.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Card lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Badge      lipgloss.Style
)

// Components
var (
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	ButtonDisabled lipgloss.Style
)

var active = DefaultName

func init() {
	Apply(DefaultName)
}

// Apply switches the active palette. Unknown names select the default
// palette. It returns the name actually applied.
func Apply(name string) string {
	p, ok := palettes[name]
	if !ok {
		p = palettes[DefaultName]
	}
	active = p.Name

	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.BgDark, p.BgCard, p.Border

	rebuild()
	return active
}

// Active returns the name of the applied palette.
func Active() string {
	return active
}

// Names lists every known palette.
func Names() []string {
	out := make([]string, 0, len(palettes))
	for name := range palettes {
		out = append(out, name)
	}
	return out
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Secondary).
		Padding(0, 1)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
		Foreground(Border).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
