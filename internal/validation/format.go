// Package validation formats error details for closed value sets.
package validation

import "strings"

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	var builder strings.Builder
	for i, value := range values {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(string(value))
	}
	return builder.String()
}
