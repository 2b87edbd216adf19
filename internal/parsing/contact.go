package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-deck/internal/types"
)

var (
	// local@domain.tld, the domain needs at least one dot and a 2+ letter TLD
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}`)

	// optional "+", then 8 or more digits with single interior spaces or hyphens
	phonePattern = regexp.MustCompile(`\+?\d(?:[ \-]?\d){7,}`)

	// "2016-2020" has eight digits but is a date range
	yearRangePattern = regexp.MustCompile(`^(?:19|20)\d{2}[ \-](?:19|20)\d{2}$`)

	// contact lines are often several fields joined by a separator
	segmentSeparator = regexp.MustCompile(`\s*[|•·]\s*`)
)

// ParseContact scans every line for the first email, phone number and address.
// Fields that never match stay empty.
func ParseContact(lines []string) types.ContactInfo {
	var info types.ContactInfo

	for i, line := range lines {
		if info.Email == "" {
			info.Email = findEmail(line)
		}
		if info.Phone == "" {
			info.Phone = findPhone(line)
		}
		// the first line is the name
		if info.Address == "" && i > 0 {
			info.Address = findAddress(line)
		}
		if info.Email != "" && info.Phone != "" && info.Address != "" {
			break
		}
	}
	return info
}

func findEmail(line string) string {
	return emailPattern.FindString(line)
}

func findPhone(line string) string {
	// digits inside an address like jane.doe1985@mail.com are not a phone number
	line = emailPattern.ReplaceAllString(line, " ")
	for _, candidate := range phonePattern.FindAllString(line, -1) {
		if !yearRangePattern.MatchString(candidate) {
			return candidate
		}
	}
	return ""
}

// findAddress returns the first segment of line that looks like a postal
// address: a comma plus a digit, or two or more commas. Segments carrying an
// email or phone number are skipped.
func findAddress(line string) string {
	for _, segment := range segmentSeparator.Split(line, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" || emailPattern.MatchString(segment) || findPhone(segment) != "" {
			continue
		}
		commas := strings.Count(segment, ",")
		if (commas >= 1 && containsDigit(segment)) || commas >= 2 {
			return segment
		}
	}
	return ""
}
