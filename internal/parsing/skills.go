package parsing

import "strings"

// ParseSkills turns Skills section lines into a flat list. A line with commas
// holds several skills; any other line is one skill. Order and duplicates are kept.
func ParseSkills(lines []string) []string {
	skills := []string{}
	for _, line := range lines {
		line = stripBullet(line)
		if !strings.Contains(line, ",") {
			if line != "" {
				skills = append(skills, line)
			}
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skills = append(skills, part)
			}
		}
	}
	return skills
}

// ParseSummary joins the Summary section lines with newlines
func ParseSummary(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
