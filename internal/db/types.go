package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Conversion status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Conversion represents one résumé-to-deck run
type Conversion struct {
	ID           uuid.UUID       `json:"id"`
	InputPath    string          `json:"input_path"`
	InputFormat  string          `json:"input_format"`
	InputHash    string          `json:"input_hash"`
	TemplatePath string          `json:"template_path"`
	OutputPath   string          `json:"output_path"`
	Status       string          `json:"status"`
	Record       json.RawMessage `json:"record,omitempty"`
	Filled       []string        `json:"filled"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

// ConversionInput holds what is known when a conversion starts
type ConversionInput struct {
	ID           uuid.UUID
	InputPath    string
	InputFormat  string
	TemplatePath string
}

// ConversionOutcome holds what is known when a conversion ends.
// A non-empty Error marks the conversion failed.
type ConversionOutcome struct {
	InputHash  string
	OutputPath string
	Record     any
	Filled     []string
	Error      string
}

// Status returns the status implied by the outcome
func (o ConversionOutcome) Status() string {
	if o.Error != "" {
		return StatusFailed
	}
	return StatusCompleted
}

// ConversionFilters holds optional filters for listing conversions
type ConversionFilters struct {
	Status    string
	InputHash string
	Limit     int
}
