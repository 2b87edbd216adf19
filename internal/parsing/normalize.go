package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// bulletPrefix matches a leading list glyph. A plain hyphen or dash only counts
// when followed by whitespace so that "-5% churn" is left intact.
var bulletPrefix = regexp.MustCompile(`^(?:[•·▪◦●■□○►▸➢✓✔*]|[-–—](?:\s|$))\s*`)

// headerDashes are the separators accepted between name and role, in no particular order.
// A bare hyphen is not one of them: "Mary-Jane Watson" is a name.
var headerDashes = []string{"—", "–", " - "}

// isBullet reports whether the line starts with a list glyph
func isBullet(line string) bool {
	return bulletPrefix.MatchString(line)
}

// stripBullet removes a leading list glyph and the space after it
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// splitOnFirstDash splits s once on the earliest name/role separator
func splitOnFirstDash(s string) (before, after string, ok bool) {
	cut, width := -1, 0
	for _, dash := range headerDashes {
		if i := strings.Index(s, dash); i >= 0 && (cut < 0 || i < cut) {
			cut, width = i, len(dash)
		}
	}
	if cut < 0 {
		return s, "", false
	}
	return strings.TrimSpace(s[:cut]), strings.TrimSpace(s[cut+width:]), true
}

// splitOnLastComma splits s on its last comma
func splitOnLastComma(s string) (before, after string, ok bool) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return s, "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

// dateRangeSeparators are tried in order; spaced forms win over bare dashes so
// that "Jan-2016 – Dec-2020" splits in the middle.
var dateRangeSeparators = []string{" – ", " — ", " - ", " to ", " To ", "–", "—", "-"}

// splitDateRange splits "2016–2020" or "Sep 2016 - Present" into start and end
func splitDateRange(s string) (start, end string, ok bool) {
	for _, sep := range dateRangeSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
		}
	}
	return s, "", false
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
