package api

import (
	"strings"
)

// validationMessage surfaces the domain validation message to the caller.
// Validation errors carry no internal detail, so the leading cause text is
// safe to return as is.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i > 0 && strings.Contains(msg[:i], " ") {
		// keep only the outermost human-readable part of a wrapped chain
		msg = msg[:i]
	}
	if msg == "" {
		return "Invalid request data"
	}
	return msg
}
