// Package rendering writes a ResumeRecord into the labelled text regions of a
// single-slide .pptx template, keeping each region's font styling.
package rendering

import "fmt"

// TemplateLoadError represents a template that is missing or cannot be parsed
type TemplateLoadError struct {
	Message string
	Cause   error
}

func (e *TemplateLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template load error: %s", e.Message)
}

func (e *TemplateLoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure to write the merged presentation
type SaveError struct {
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("save error: %s", e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
