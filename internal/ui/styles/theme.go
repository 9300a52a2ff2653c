package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette. The listing keeps the console browser's
// display codes: directories yellow, files white, both bold, the cursor
// glyph plain white.
type Theme struct {
	// Accents for the title gradient and popup border. Hex values, because
	// ANSI palette entries cannot be blended.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Border    lipgloss.Color

	// Entry kinds, as basic ANSI so the user's terminal palette applies.
	Directory lipgloss.Color // SGR 33
	File      lipgloss.Color // SGR 37

	// Chrome text, from plain to barely-there.
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // row highlight under the cursor

	Error   lipgloss.Color
	Warning lipgloss.Color // oversized ROMs, fallback paths
}

// Styles are the theme's colors built into ready-to-render lipgloss styles.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Cursor    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var (
	defaultTheme = Theme{
		Primary:   lipgloss.Color("#7b68ee"),
		Secondary: lipgloss.Color("#ffcc33"),
		Border:    lipgloss.Color("#7b68ee"),

		Directory: lipgloss.Color("3"),
		File:      lipgloss.Color("7"),

		FgBase:   lipgloss.Color("7"),
		FgMuted:  lipgloss.Color("245"),
		FgSubtle: lipgloss.Color("240"),

		BgCursor: lipgloss.Color("236"),

		Error:   lipgloss.Color("1"),
		Warning: lipgloss.Color("208"),
	}

	defaultStyles = defaultTheme.build()
)

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the active theme's styles.
func S() *Styles {
	return defaultStyles
}

func (t Theme) build() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     base.Bold(true),
		Directory: lipgloss.NewStyle().Foreground(t.Directory).Bold(true),
		File:      lipgloss.NewStyle().Foreground(t.File).Bold(true),
		Cursor:    lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
