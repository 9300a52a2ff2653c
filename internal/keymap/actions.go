// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionPageUp   Action = "page_up"
	ActionPageDown Action = "page_down"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - open directory or pick ROM
	ActionBack   Action = "back"   // h - parent directory
)
