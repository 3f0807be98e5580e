// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad   Op = "load config"
	OpConfigWatch  Op = "watch config"
	OpConfigReload Op = "reload config"

	// Sheet state
	OpStateOpen       Op = "open state database"
	OpSheetSave       Op = "save sheet state"
	OpSheetRestore    Op = "restore sheet state"
	OpHistoryRecord   Op = "record sheet history"
	OpHistoryLoad     Op = "load sheet history"
	OpAnchorThreshold Op = "set anchor threshold"
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
