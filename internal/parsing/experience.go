package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-deck/internal/types"
)

var (
	// any trailing parenthesized group, "(Remote)" included
	trailingParenPattern = regexp.MustCompile(`\([^()]*\)$`)

	// a trailing parenthesized group that looks like dates
	trailingDatesPattern = regexp.MustCompile(`\s*\(([^()]*\b(?:(?:19|20)\d{2}|(?i:present|current|now))\b[^()]*)\)$`)

	// a comma followed later in the line by a four-digit year
	commaYearPattern = regexp.MustCompile(`,.*\b(?:19|20)\d{2}\b`)

	// a trailing ", 2019 – 2021" style segment without parentheses
	trailingYearSegment = regexp.MustCompile(`,\s*([^,]*\b(?:19|20)\d{2}\b[^,]*)$`)

	// Title, Company (Dates)
	experienceHeaderPattern = regexp.MustCompile(`^([^,]+),\s*(.+?)\s*\(([^()]*)\)$`)

	atSeparator = regexp.MustCompile(`(?i)\s+at\s+`)
)

// ParseExperience parses the Experience section into entries, in document order
func ParseExperience(lines []string) []types.ExperienceEntry {
	p := &experienceParser{entries: []types.ExperienceEntry{}}
	for _, line := range lines {
		p.feed(line)
	}
	p.flush()
	return p.entries
}

type experienceState int

const (
	awaitingHeader experienceState = iota
	accumulatingDescription
)

// experienceParser is the header/description state machine. Every header line
// flushes the entry in progress; the last entry is flushed once at section end.
type experienceParser struct {
	state       experienceState
	current     types.ExperienceEntry
	description []string
	entries     []types.ExperienceEntry
}

func (p *experienceParser) feed(line string) {
	if isExperienceHeader(line) {
		p.flush()
		p.current = parseExperienceHeader(line)
		p.state = accumulatingDescription
		return
	}
	// text before the first header belongs to no entry
	if p.state == awaitingHeader {
		return
	}
	if text := stripBullet(line); text != "" {
		p.description = append(p.description, text)
	}
}

// flush emits the entry in progress when it has a position and resets to awaitingHeader
func (p *experienceParser) flush() {
	if p.current.Position != "" {
		p.current.Description = strings.Join(p.description, "\n")
		p.entries = append(p.entries, p.current)
	}
	p.current = types.ExperienceEntry{}
	p.description = nil
	p.state = awaitingHeader
}

// isExperienceHeader reports whether a line starts a new job: it ends with a
// parenthesized group or has a comma followed by a year. Bullet lines never do.
func isExperienceHeader(line string) bool {
	if isBullet(line) {
		return false
	}
	return trailingParenPattern.MatchString(strings.TrimSpace(line)) || commaYearPattern.MatchString(line)
}

// parseExperienceHeader splits a header line into position, company and dates.
// Only a date-like group fills Dates; "Globex (Remote)" stays the company.
func parseExperienceHeader(line string) types.ExperienceEntry {
	line = strings.TrimSpace(line)
	if m := experienceHeaderPattern.FindStringSubmatch(line); m != nil && trailingDatesPattern.MatchString(line) {
		return types.ExperienceEntry{
			Position: strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(m[2]),
			Dates:    strings.TrimSpace(m[3]),
		}
	}

	var entry types.ExperienceEntry
	remainder := line
	if loc := trailingDatesPattern.FindStringSubmatchIndex(remainder); loc != nil {
		entry.Dates = strings.TrimSpace(remainder[loc[2]:loc[3]])
		remainder = remainder[:loc[0]]
	} else if loc := trailingYearSegment.FindStringSubmatchIndex(remainder); loc != nil {
		entry.Dates = strings.TrimSpace(remainder[loc[2]:loc[3]])
		remainder = remainder[:loc[0]]
	}
	remainder = strings.TrimSpace(remainder)

	if position, company, ok := splitOnLastComma(remainder); ok {
		entry.Position, entry.Company = position, company
		return entry
	}
	if parts := atSeparator.Split(remainder, 2); len(parts) == 2 {
		entry.Position, entry.Company = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		return entry
	}
	entry.Position = remainder
	return entry
}
