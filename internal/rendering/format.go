package rendering

import (
	"strings"

	"github.com/jonathan/resume-deck/internal/types"
)

const descriptionBullet = "• "

// fieldValue returns the text written into a region for a label key
type fieldValue func(r *types.ResumeRecord) string

// regionFields maps a normalized region label to the record field it shows.
// photo and picture regions are always cleared.
var regionFields = map[string]fieldValue{
	"name":       func(r *types.ResumeRecord) string { return r.Name },
	"role":       func(r *types.ResumeRecord) string { return r.Role },
	"email":      func(r *types.ResumeRecord) string { return r.Email },
	"phone":      func(r *types.ResumeRecord) string { return r.Phone },
	"address":    func(r *types.ResumeRecord) string { return r.Address },
	"summary":    func(r *types.ResumeRecord) string { return r.Summary },
	"skills":     func(r *types.ResumeRecord) string { return FormatSkills(r.Skills) },
	"experience": func(r *types.ResumeRecord) string { return FormatExperience(r.Experience) },
	"education":  func(r *types.ResumeRecord) string { return FormatEducation(r.Education) },
	"photo":      func(*types.ResumeRecord) string { return "" },
	"picture":    func(*types.ResumeRecord) string { return "" },
}

// FieldText returns the text for a region label, and whether the label is known
func FieldText(r *types.ResumeRecord, label string) (string, bool) {
	value, ok := regionFields[normalizeLabel(label)]
	if !ok {
		return "", false
	}
	return value(r), true
}

// FormatSkills puts one skill per line
func FormatSkills(skills []string) string {
	return strings.Join(skills, "\n")
}

// FormatEducation renders "Degree, Institution (Start – End)", one entry per line
func FormatEducation(entries []types.EducationEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := joinNonEmpty(", ", e.Degree, e.Institution)
		if dates := joinNonEmpty(" – ", e.Start, e.End); dates != "" {
			line += " (" + dates + ")"
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// FormatExperience renders each job as a "Position, Company (Dates)" header
// followed by bulleted description lines. Jobs are separated by a blank line.
func FormatExperience(entries []types.ExperienceEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		header := joinNonEmpty(", ", e.Position, e.Company)
		if e.Dates != "" {
			header += " (" + e.Dates + ")"
		}
		lines := []string{header}
		for _, d := range strings.Split(e.Description, "\n") {
			if d = strings.TrimSpace(d); d != "" {
				lines = append(lines, descriptionBullet+d)
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// labelWrappers are stripped from placeholder text before lookup
var labelWrappers = [][2]string{{"{{", "}}"}, {"[", "]"}, {"<", ">"}, {"«", "»"}}

// normalizeLabel lower-cases and trims placeholder text and strips wrapping
// brackets and a trailing colon: "{{ Name }}", "[Email]" and "Skills:" all
// normalize to their bare key.
func normalizeLabel(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	for changed := true; changed; {
		changed = false
		if trimmed := strings.TrimSpace(strings.TrimSuffix(s, ":")); trimmed != s {
			s, changed = trimmed, true
		}
		for _, w := range labelWrappers {
			if len(s) >= len(w[0])+len(w[1]) && strings.HasPrefix(s, w[0]) && strings.HasSuffix(s, w[1]) {
				s, changed = strings.TrimSpace(s[len(w[0]):len(s)-len(w[1])]), true
			}
		}
	}
	return s
}
