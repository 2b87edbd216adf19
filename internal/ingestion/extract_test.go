package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-deck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleResume = []string{
	"Jane Doe – Senior Engineer",
	"jane.doe@example.com | +1 555 123 4567",
	"",
	"Skills",
	"Go,   Python, Docker",
	"Experience",
	"Senior Engineer, Acme Corp (2020 – Present)",
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "docx", path: "cv.docx"},
		{name: "pdf", path: "cv.pdf"},
		{name: "upper case extension", path: "CV.PDF"},
		{name: "text file", path: "cv.txt", wantErr: true},
		{name: "legacy word", path: "cv.doc", wantErr: true},
		{name: "no extension", path: "cv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFormat(tt.path)
			if tt.wantErr {
				var formatErr *UnsupportedFormatError
				assert.True(t, errors.As(err, &formatErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExtractLines_Docx(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "resume.docx", testutil.BuildDOCX(t, sampleResume))

	lines, err := ExtractLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe – Senior Engineer",
		"jane.doe@example.com | +1 555 123 4567",
		"Skills",
		"Go, Python, Docker",
		"Experience",
		"Senior Engineer, Acme Corp (2020 – Present)",
	}, lines)
}

func TestExtractLines_DocxSplitRuns(t *testing.T) {
	// a single paragraph split across runs with a tab and a line break
	paragraph := `<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:tab/><w:t>Doe</w:t></w:r>` +
		`<w:r><w:br/><w:t>Engineer</w:t></w:r></w:p><w:p/>`
	path := testutil.WriteFile(t, t.TempDir(), "resume.docx", testutil.BuildDOCXBody(t, paragraph))

	lines, err := ExtractLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe Engineer"}, lines)
}

func TestExtractLines_Pdf(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "resume.pdf", testutil.BuildPDF(t, []string{
		"Jane Doe - Senior Engineer",
		"jane.doe@example.com",
		"Education",
		"BSc Computer Science, MIT (2016-2020)",
	}))

	lines, err := ExtractLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe - Senior Engineer",
		"jane.doe@example.com",
		"Education",
		"BSc Computer Science, MIT (2016-2020)",
	}, lines)
}

func TestExtractLines_PdfLinesInOneTextObject(t *testing.T) {
	stream := "BT /F1 11 Tf 72 760 Td (Jane Doe) Tj 0 -14 Td (Skills) Tj 0 -14 Td (Go, Python) Tj ET\n"
	path := testutil.WriteFile(t, t.TempDir(), "resume.pdf", testutil.BuildPDFStream(t, stream))

	lines, err := ExtractLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe", "Skills", "Go, Python"}, lines)
}

func TestExtractLines_PdfRunsOnOneBaseline(t *testing.T) {
	// two runs on the same baseline, the second moved right with Td
	stream := "BT /F1 11 Tf 72 760 Td (Jane Doe) Tj 200 0 Td (Engineer) Tj 0 -14 Td (Skills) Tj ET\n"
	path := testutil.WriteFile(t, t.TempDir(), "resume.pdf", testutil.BuildPDFStream(t, stream))

	lines, err := ExtractLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe Engineer", "Skills"}, lines)
}

func TestExtractLines_UpperCaseExtension(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "RESUME.DOCX", testutil.BuildDOCX(t, []string{"Jane Doe"}))

	lines, err := ExtractLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, lines)
}

func TestExtractLines_UnsupportedFormat(t *testing.T) {
	// the file exists, the extension alone decides
	path := testutil.WriteFile(t, t.TempDir(), "resume.txt", []byte("Jane Doe"))

	lines, err := ExtractLines(path)

	assert.Nil(t, lines)
	var formatErr *UnsupportedFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, ".txt", formatErr.Ext)
}

func TestExtractLines_FileNotFound(t *testing.T) {
	lines, err := ExtractLines(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Nil(t, lines)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractLines_CorruptDocuments(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
	}{
		{name: "docx that is not a zip", file: "cv.docx", data: []byte("not a zip archive")},
		{name: "pdf without header", file: "cv.pdf", data: []byte("plain text pretending to be a pdf")},
		{name: "empty pdf", file: "cv.pdf", data: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), tt.file, tt.data)

			lines, err := ExtractLines(path)

			assert.Nil(t, lines)
			var corruptErr *CorruptDocumentError
			require.True(t, errors.As(err, &corruptErr), "got %v", err)
			assert.Equal(t, path, corruptErr.Path)
		})
	}
}

func TestIngestFile_Metadata(t *testing.T) {
	data := testutil.BuildDOCX(t, sampleResume)
	path := testutil.WriteFile(t, t.TempDir(), "resume.docx", data)

	lines, meta, err := IngestFile(path)
	require.NoError(t, err)
	require.NotNil(t, meta)

	assert.Equal(t, path, meta.Path)
	assert.Equal(t, "docx", meta.Format)
	assert.Equal(t, len(lines), meta.LineCount)
	assert.Equal(t, computeHash(data), meta.Hash)
}
