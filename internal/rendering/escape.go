package rendering

import "strings"

// EscapeFilename makes text safe as part of a file name: spaces become
// underscores and path or shell special characters are dropped.
// Special characters: / \ : * ? " < > | and control characters
func EscapeFilename(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range strings.TrimSpace(text) {
		switch {
		case r == ' ' || r == '\t':
			result.WriteRune('_')
		case r < 0x20 || r == 0x7f:
			// control characters
		case strings.ContainsRune(`/\:*?"<>|`, r):
			// path and shell specials
		default:
			result.WriteRune(r)
		}
	}

	// collapse runs of underscores left by dropped characters
	out := result.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}
