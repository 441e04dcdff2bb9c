package utils

import "strings"

// ParseCSVList splits comma-separated input into trimmed, non-empty items.
func ParseCSVList(text string) []string {
	result := make([]string, 0)
	if text == "" {
		return result
	}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
