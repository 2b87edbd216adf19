package db

import (
	"time"

	"github.com/google/uuid"
)

// Step names recorded for a conversion
const (
	StepExtract = "extract"
	StepParse   = "parse"
	StepMerge   = "merge"
	StepReport  = "report"
)

// StepStatus constants
const (
	StepStatusCompleted = "completed"
	StepStatusFailed    = "failed"
	StepStatusSkipped   = "skipped"
)

// Step represents a single step execution of a conversion
type Step struct {
	ConversionID uuid.UUID `json:"conversion_id"`
	Step         string    `json:"step"`
	Status       string    `json:"status"`
	DurationMs   int       `json:"duration_ms"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StepInput represents input for recording a step
type StepInput struct {
	Step       string
	Status     string
	DurationMs int
	Error      string
}
