package errors

import (
	"fmt"
	"strings"
)

// Format renders the error for terminal output: code, message, detail,
// suggestion, and doc link, each on its own block.
func Format(e *HewError) string {
	var b strings.Builder

	if e.Code != "" {
		fmt.Fprintf(&b, "Error %s", e.Code)
		if e.Category != "" {
			fmt.Fprintf(&b, " (%s)", e.Category)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n")
		b.WriteString(e.Detail)
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\nCaused by: %v\n", e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Suggestion)
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "\nDocs: %s\n", e.DocURL)
	}

	return b.String()
}
