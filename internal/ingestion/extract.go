package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// Supported input extensions
const (
	ExtDOCX = ".docx"
	ExtPDF  = ".pdf"
)

// CheckFormat rejects paths whose extension is not a supported document kind.
// It does not touch the file system.
func CheckFormat(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtDOCX, ExtPDF:
		return nil
	default:
		return &UnsupportedFormatError{Ext: ext}
	}
}

// ExtractLines reads a .docx or .pdf résumé and returns its non-empty, trimmed
// text lines in reading order.
func ExtractLines(path string) ([]string, error) {
	lines, _, err := IngestFile(path)
	return lines, err
}

// IngestFile is ExtractLines plus metadata about the source document
func IngestFile(path string) ([]string, *Metadata, error) {
	if err := CheckFormat(path); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Cause: err}
	}

	var lines []string
	if strings.ToLower(filepath.Ext(path)) == ExtPDF {
		lines, err = extractPDF(path, data)
	} else {
		lines, err = extractDocx(path, data)
	}
	if err != nil {
		return nil, nil, err
	}

	return lines, NewMetadata(path, data, len(lines)), nil
}
