package parsing

import "strings"

// ParseHeader reads the candidate's name and role from the top of the document.
//
// "Jane Doe – Senior Engineer" splits on the first em-dash, en-dash or spaced
// hyphen. Otherwise the first line is the name and the second line becomes the
// role when it has no digits, no "@" and is not a section heading.
func ParseHeader(lines []string) (name, role string) {
	if len(lines) == 0 {
		return "", ""
	}

	first := strings.TrimSpace(lines[0])
	if before, after, ok := splitOnFirstDash(first); ok {
		return before, after
	}

	if len(lines) > 1 && looksLikeRole(lines[1]) {
		return first, strings.TrimSpace(lines[1])
	}
	return first, ""
}

func looksLikeRole(line string) bool {
	return line != "" &&
		!containsDigit(line) &&
		!strings.Contains(line, "@") &&
		!IsHeading(line)
}
