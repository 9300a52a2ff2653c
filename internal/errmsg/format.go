// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Browsing operations
	OpDirScan   Op = "read directory"
	OpDirEnter  Op = "enter directory"
	OpDirLeave  Op = "leave directory"
	OpRomSelect Op = "select ROM"

	// ROM operations
	OpRomLoad     Op = "load ROM"
	OpRomValidate Op = "validate ROM"
	OpSavePath    Op = "derive save path"

	// Config operations
	OpConfigLoad    Op = "load configuration"
	OpConfigOverlay Op = "apply game configuration"

	// State operations
	OpStateOpen    Op = "open state database"
	OpStateSave    Op = "save navigation state"
	OpStateRestore Op = "restore navigation state"
	OpHistoryRead  Op = "read launch history"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
