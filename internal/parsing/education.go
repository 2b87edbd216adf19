package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-deck/internal/types"
)

var (
	// Degree, Institution (dates)
	educationPattern = regexp.MustCompile(`^(.+),\s*(.+?)\s*\(([^()]*)\)$`)

	// a parenthesized group holding at least one digit, e.g. "(2016–2020)"
	dateGroupPattern = regexp.MustCompile(`\([^()]*\d[^()]*\)`)
)

// ParseEducation parses one entry per Education section line. A line holding
// several "(start–end)" groups yields one entry per group.
func ParseEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	for _, line := range lines {
		for _, part := range splitEducationLine(stripBullet(line)) {
			entries = append(entries, parseEducationLine(part))
		}
	}
	return entries
}

// splitEducationLine cuts a line after each date group when it has more than one
func splitEducationLine(line string) []string {
	if line == "" {
		return nil
	}
	locs := dateGroupPattern.FindAllStringIndex(line, -1)
	if len(locs) < 2 {
		return []string{line}
	}

	var parts []string
	start := 0
	for _, loc := range locs {
		if part := trimSeparators(line[start:loc[1]]); part != "" {
			parts = append(parts, part)
		}
		start = loc[1]
	}
	if rest := trimSeparators(line[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

func trimSeparators(s string) string {
	return strings.Trim(s, " ,;|")
}

// parseEducationLine tries, in order: "Degree, Institution (Start–End)", a
// split on the last comma, and finally the whole line as the degree.
func parseEducationLine(line string) types.EducationEntry {
	if m := educationPattern.FindStringSubmatch(line); m != nil && containsDigit(m[3]) {
		entry := types.EducationEntry{
			Degree:      strings.TrimSpace(m[1]),
			Institution: strings.TrimSpace(m[2]),
		}
		if start, end, ok := splitDateRange(strings.TrimSpace(m[3])); ok {
			entry.Start, entry.End = start, end
		} else {
			// a single date is the graduation date
			entry.End = start
		}
		return entry
	}

	if degree, institution, ok := splitOnLastComma(line); ok {
		return types.EducationEntry{Degree: degree, Institution: institution}
	}
	return types.EducationEntry{Degree: strings.TrimSpace(line)}
}
