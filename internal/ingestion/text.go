package ingestion

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanLines splits extracted text into the line sequence used by the parser:
// line endings are normalized, whitespace runs collapse to a single space,
// every line is trimmed and blank lines are dropped.
func CleanLines(content string) []string {
	if content == "" {
		return []string{}
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	rawLines := strings.Split(content, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		if cleaned := cleanLine(line); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return lines
}

// cleanLine normalizes a single line. Non-breaking spaces and tabs count as whitespace.
func cleanLine(line string) string {
	line = strings.ReplaceAll(line, "\u00a0", " ")
	line = whitespaceRun.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}
