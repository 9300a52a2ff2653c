package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders the application title bold, fading from the theme's
// primary to its secondary accent color.
func TitleGradient(text string) string {
	return Gradient(text, defaultTheme.Primary, defaultTheme.Secondary)
}

// Gradient renders bold text with a horizontal color gradient. Blending runs
// per grapheme cluster, so combining marks and emoji stay intact.
func Gradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) < 2 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	stops := blendHCL(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		st := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexOf(stops[i])))
		b.WriteString(st.Render(cluster))
	}
	return b.String()
}

// blendHCL interpolates n colors between from and to in HCL space, which
// keeps the transition perceptually even.
func blendHCL(n int, from, to lipgloss.Color) []color.Color {
	if n < 2 {
		return []color.Color{parseHex(from)}
	}

	c1, _ := colorful.MakeColor(parseHex(from))
	c2, _ := colorful.MakeColor(parseHex(to))

	stops := make([]color.Color, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		stops[i] = c1.BlendHcl(c2, t)
	}
	return stops
}

// parseHex reads a "#rrggbb" lipgloss color. ANSI palette values cannot be
// blended and fall back to a neutral gray.
func parseHex(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func hexOf(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
