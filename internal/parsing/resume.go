package parsing

import (
	"fmt"

	"github.com/jonathan/resume-deck/internal/ingestion"
	"github.com/jonathan/resume-deck/internal/types"
)

// ParseLines builds a ResumeRecord from an extracted line sequence.
// It never fails: anything it cannot find is left empty.
func ParseLines(lines []string) *types.ResumeRecord {
	record := types.NewResumeRecord()
	record.Name, record.Role = ParseHeader(lines)
	record.ContactInfo = ParseContact(lines)
	record.Summary = ParseSummary(SectionBody(lines, SectionSummary))
	record.Skills = ParseSkills(SectionBody(lines, SectionSkills))
	record.Education = ParseEducation(SectionBody(lines, SectionEducation))
	record.Experience = ParseExperience(SectionBody(lines, SectionExperience))
	return record
}

// ParseResume extracts the lines of a .docx or .pdf résumé and parses them.
// Only extraction failures are returned as errors.
func ParseResume(path string) (*types.ResumeRecord, error) {
	lines, err := ingestion.ExtractLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return ParseLines(lines), nil
}
