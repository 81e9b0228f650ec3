package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the picker bar.
type Theme struct {
	Name string

	Surface       string // bar background
	SelectionBg   string // highlighted chip
	SelectionText string
	Text          string // query text
	Muted         string // other chips, placeholder
	Faint         string // overflow marker, help
	Accent        string // chip that tab moves to next
}

// Styles are the Lipgloss styles built from a Theme.
type Styles struct {
	Bar         lipgloss.Style
	Prompt      lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Chip        lipgloss.Style
	NextChip    lipgloss.Style
	Selected    lipgloss.Style
	Overflow    lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	surface := lipgloss.Color(t.Surface)
	chip := lipgloss.NewStyle().
		Background(surface).
		Foreground(lipgloss.Color(t.Muted)).
		Padding(0, 1)

	return Styles{
		Bar: lipgloss.NewStyle().
			Background(surface),
		Prompt: lipgloss.NewStyle().
			Background(surface).
			Foreground(lipgloss.Color(t.SelectionBg)).
			Bold(true),
		Input: lipgloss.NewStyle().
			Background(surface).
			Foreground(lipgloss.Color(t.Text)),
		Placeholder: lipgloss.NewStyle().
			Background(surface).
			Foreground(lipgloss.Color(t.Faint)),
		Chip:     chip,
		NextChip: chip.Foreground(lipgloss.Color(t.Accent)),
		Selected: chip.
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Overflow: lipgloss.NewStyle().
			Background(surface).
			Foreground(lipgloss.Color(t.Faint)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
	}
}

var themes = map[string]Theme{
	"Amenu":    amenuTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Amenu", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Amenu.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return amenuTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func amenuTheme() Theme {
	return Theme{
		Name: "Amenu",

		Surface:       "#232429",
		SelectionBg:   "#d946ef", // fuchsia-500
		SelectionText: "#ffffff",
		Text:          "#ffffff",
		Muted:         "#abb2bf",
		Faint:         "#5c6370",
		Accent:        "#e5c07b",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Surface:       "#192330", // bg1
		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1
		Text:          "#cdcecf", // fg1
		Muted:         "#aeafb0", // fg2
		Faint:         "#738091", // comment
		Accent:        "#dbc074", // yellow
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Surface:       "#1F1F28", // sumiInk3
		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite
		Text:          "#DCD7BA", // fujiWhite
		Muted:         "#C8C093", // oldWhite
		Faint:         "#727169", // fujiGray
		Accent:        "#E6C384", // carpYellow
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Surface:       "#0f172a", // slate-900
		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50
		Text:          "#f1f5f9", // slate-100
		Muted:         "#94a3b8", // slate-400
		Faint:         "#64748b", // slate-500
		Accent:        "#f59e0b", // amber-500
	}
}
