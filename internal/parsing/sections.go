// Package parsing turns the extracted line sequence of a résumé into a structured ResumeRecord.
//
// Everything here is heuristic: a section or field that cannot be found yields
// an empty value, never an error.
package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section is one of the named résumé regions the parser understands
type Section string

// Known sections
const (
	SectionSkills     Section = "skills"
	SectionSummary    Section = "summary"
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
)

// NotFound is returned by FindSection when no line carries the heading
const NotFound = -1

// sectionHeadings maps each section to the headings that open it. The first
// entry is the canonical heading.
var sectionHeadings = map[Section][]string{
	SectionSkills:     {"Skills", "Technical Skills", "Core Skills", "Key Skills", "Competencies"},
	SectionSummary:    {"Summary", "Professional Summary", "Profile", "Objective", "Career Objective", "About Me"},
	SectionEducation:  {"Education", "Academic Background", "Qualifications"},
	SectionExperience: {"Experience", "Work Experience", "Professional Experience", "Employment History", "Work History"},
}

// DefaultStopHeadings ends any section. Order does not matter.
// "Languages" is left out because skills sections often carry a
// "Languages: Go, Python" line.
var DefaultStopHeadings = buildStopHeadings(
	"Certifications", "Certificates", "Projects", "Interests", "Hobbies",
	"References", "Awards", "Publications", "Volunteering",
)

func buildStopHeadings(extra ...string) []string {
	var headings []string
	for _, s := range []Section{SectionSkills, SectionSummary, SectionEducation, SectionExperience} {
		headings = append(headings, sectionHeadings[s]...)
	}
	return append(headings, extra...)
}

// Heading returns the canonical heading of a section, e.g. "Skills"
func Heading(s Section) string {
	if headings, ok := sectionHeadings[s]; ok {
		return headings[0]
	}
	return ""
}

// hasHeading reports whether line starts with heading, case-insensitively.
// The heading must end at a word boundary: "Skills:" and "Skills & Tools"
// match "Skills", "Experienced engineer" does not match "Experience".
func hasHeading(line, heading string) bool {
	if heading == "" || len(line) < len(heading) || !strings.EqualFold(line[:len(heading)], heading) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(line[len(heading):])
	return next == utf8.RuneError || !(unicode.IsLetter(next) || unicode.IsDigit(next))
}

// IsHeading reports whether line opens any known section or stop heading
func IsHeading(line string) bool {
	for _, h := range DefaultStopHeadings {
		if hasHeading(line, h) {
			return true
		}
	}
	return false
}

// FindSection returns the index of the first line starting with heading, or NotFound
func FindSection(lines []string, heading string) int {
	for i, line := range lines {
		if hasHeading(line, heading) {
			return i
		}
	}
	return NotFound
}

// ExtractSection returns the lines strictly between the heading line and the
// first later line that starts with any of stopHeadings. The result is empty
// when the heading is missing.
func ExtractSection(lines []string, heading string, stopHeadings []string) []string {
	start := FindSection(lines, heading)
	if start == NotFound {
		return []string{}
	}
	return sectionLines(lines, start, stopHeadings)
}

func sectionLines(lines []string, start int, stopHeadings []string) []string {
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if startsWithAny(lines[i], stopHeadings) {
			end = i
			break
		}
	}
	out := make([]string, end-start-1)
	copy(out, lines[start+1:end])
	return out
}

func startsWithAny(line string, headings []string) bool {
	for _, h := range headings {
		if hasHeading(line, h) {
			return true
		}
	}
	return false
}

// findSectionStart locates the earliest heading line of a section among all its
// heading variants. It returns the index and the matched heading.
func findSectionStart(lines []string, s Section) (int, string) {
	best, matched := NotFound, ""
	for _, h := range sectionHeadings[s] {
		i := FindSection(lines, h)
		if i == NotFound {
			continue
		}
		// prefer the earliest line, then the longest heading on that line
		if best == NotFound || i < best || (i == best && len(h) > len(matched)) {
			best, matched = i, h
		}
	}
	return best, matched
}

// SectionBody returns the content of a section using DefaultStopHeadings.
// Text after a colon on the heading line ("Skills: Go, Python") is returned as
// the first body line.
func SectionBody(lines []string, s Section) []string {
	start, heading := findSectionStart(lines, s)
	if start == NotFound {
		return []string{}
	}

	body := sectionLines(lines, start, DefaultStopHeadings)
	rest := strings.TrimSpace(lines[start][len(heading):])
	if inline, ok := strings.CutPrefix(rest, ":"); ok {
		if inline = strings.TrimSpace(inline); inline != "" {
			body = append([]string{inline}, body...)
		}
	}
	return body
}
