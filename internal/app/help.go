package app

import (
	"strings"

	"github.com/rompick/rompick/internal/keymap"
	"github.com/rompick/rompick/internal/ui/render"
	"github.com/rompick/rompick/internal/ui/styles"
)

// contextOrder defines the display order of binding sections in the help
// popup.
var contextOrder = []string{"navigator", "global"}

var contextLabels = map[string]string{
	"navigator": "Browsing",
	"global":    "Global",
}

// renderHelp lays out every key binding grouped by context. The binding set
// is small enough that no scrolling is needed.
func renderHelp() string {
	s := styles.S()

	maxKey := 0
	for _, b := range keymap.Bindings {
		if w := len(strings.Join(b.Keys, ", ")); w > maxKey {
			maxKey = w
		}
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Help"))
	sb.WriteString("\n")

	for _, ctx := range contextOrder {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}

		label := contextLabels[ctx]
		if label == "" {
			label = ctx
		}

		sb.WriteString("\n")
		sb.WriteString(s.Directory.Render(label))
		sb.WriteString("\n")
		sb.WriteString(s.Subtle.Render(render.Separator(maxKey + 18)))
		sb.WriteString("\n")

		for _, b := range bindings {
			keys := strings.Join(b.Keys, ", ")
			sb.WriteString(s.Title.Render(render.Pad(keys, maxKey)))
			sb.WriteString("  ")
			sb.WriteString(s.Base.Render(b.Description))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("?/esc close"))
	return sb.String()
}
