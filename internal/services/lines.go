package services

import "strings"

// SplitResponseLines splits model output into trimmed, non-empty lines and keeps at most limit of them
func SplitResponseLines(content string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	lines := make([]string, 0, limit)
	for _, line := range strings.Split(content, "\n") {
		if len(lines) == limit {
			break
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
