// Package ingestion reads résumé documents and turns them into clean text lines.
package ingestion

import "fmt"

// UnsupportedFormatError is returned for any input that is not a .docx or .pdf file
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported format: file has no extension (expected .docx or .pdf)"
	}
	return fmt.Sprintf("unsupported format: %s (expected .docx or .pdf)", e.Ext)
}

// IOError represents a failure to open or read the input file
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("io error: cannot read %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("io error: cannot read %s", e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// CorruptDocumentError represents a document whose container or content cannot be parsed
type CorruptDocumentError struct {
	Path  string
	Cause error
}

func (e *CorruptDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt document %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("corrupt document %s", e.Path)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}
