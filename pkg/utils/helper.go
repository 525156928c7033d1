package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates an opaque hex document id
func GenerateID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// SplitLines converts a textarea value into a list, one entry per line.
// Blank input yields an empty list, never nil entries.
func SplitLines(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	lines := strings.Split(value, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// JoinLines renders a list back into textarea form
func JoinLines(values []string) string {
	return strings.Join(values, "\n")
}
