package keymap

// Binding ties an action to its keys, for dispatch and help generation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigator"
}

// Bindings contains all key bindings, in help display order.
var Bindings = []Binding{
	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page forward", "navigator"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page back", "navigator"},
	{ActionSelect, []string{"enter", "l", "right"}, "Open directory / pick ROM", "navigator"},
	{ActionBack, []string{"h", "left", "backspace"}, "Parent directory", "navigator"},

	// Global
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit without picking", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
