package styles

import "github.com/charmbracelet/lipgloss"

var popupStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(defaultTheme.Border).
	Padding(0, 2)

// PopupStyle returns the bordered style for centered popups.
func PopupStyle() lipgloss.Style {
	return popupStyle
}
