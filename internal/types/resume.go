// Package types provides type definitions for structured data used throughout the resume-deck system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the structured result of parsing a résumé. It is the only
// contract between extraction and the template merge.
type ResumeRecord struct {
	Name string `json:"name"`
	Role string `json:"role"`
	ContactInfo
	Summary    string            `json:"summary"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education" validate:"dive"`
	Experience []ExperienceEntry `json:"experience" validate:"dive"`
}

// ContactInfo holds the first email, phone and address found in a document.
// Fields are empty when nothing matched.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// EducationEntry represents one line of the Education section
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ExperienceEntry represents a job parsed from the Experience section.
// Description lines are joined with "\n".
type ExperienceEntry struct {
	Position    string `json:"position" validate:"required"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

// NewResumeRecord returns an empty record whose list fields marshal as [] rather than null.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
	}
}

// Contact returns the contact triple of the record.
func (r *ResumeRecord) Contact() ContactInfo {
	return r.ContactInfo
}

// Validate checks record invariants (every experience entry has a position).
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
