// Package icons decorates listing entries according to the configured icon
// style.
package icons

// Style selects the icon characters used for listing entries.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the characters for the active style.
type Icons struct {
	Folder string
	Rom    string
}

var (
	nerdIcons = Icons{
		Folder: " ", // nf-fa-folder
		Rom:    " ", // nf-fa-gamepad
	}

	unicodeIcons = Icons{
		Folder: "📁 ",
		Rom:    "🎮 ",
	}

	// Without icons, directories are marked with a trailing separator
	// instead.
	noneIcons = Icons{
		Folder: "/",
	}

	current = noneIcons
)

// Init selects the icon set for the given style. Unknown styles fall back to
// the plain set. Call once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatDir decorates a directory name. The plain style appends the
// separator; icon styles prepend their folder glyph.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatRom decorates a ROM file name. The plain style leaves it untouched.
func FormatRom(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Rom + name
}
