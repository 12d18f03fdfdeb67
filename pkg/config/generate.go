package config

import (
	"strings"
)

// GenerateContent returns the built-in defaults with every value line
// commented out, ready to drop in as a user config file
func GenerateContent() string {
	return commentOutValues(DefaultsContent())
}

// commentOutValues comments every assignment line, keeping blanks,
// comments, and [section] headers as they are
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}
	return strings.Join(result, "\n")
}
