package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Metadata describes an ingested résumé document
type Metadata struct {
	Path      string `json:"path"`
	Format    string `json:"format"`     // "docx" or "pdf"
	Timestamp string `json:"timestamp"`  // RFC3339 format
	Hash      string `json:"hash"`       // SHA256 hex digest of the raw file
	LineCount int    `json:"line_count"` // Lines produced by extraction
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(path string, data []byte, lineCount int) *Metadata {
	return &Metadata{
		Path:      path,
		Format:    strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(data),
		LineCount: lineCount,
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
