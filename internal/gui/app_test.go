package gui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/ingestion"
	"github.com/jonathan/resume-deck/internal/observability"
	"github.com/jonathan/resume-deck/internal/pipeline"
	"github.com/jonathan/resume-deck/internal/rendering"
	"github.com/jonathan/resume-deck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Template = testutil.WriteFile(t, dir, "Resume.pptx", testutil.BuildPPTX(t, testutil.StandardTemplate()))
	cfg.OutputDir = filepath.Join(dir, "output")

	input := testutil.WriteFile(t, dir, "jane.docx", testutil.BuildDOCX(t, []string{
		"Jane Doe – Senior Engineer",
		"jane@example.com",
	}))
	return NewApp(test.NewApp(), cfg, observability.Discard()), input
}

func TestConvert(t *testing.T) {
	a, input := newTestApp(t)

	output, err := a.convert(context.Background(), input, overrides{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(a.config.OutputDir, "formatted_jane.pptx"), output)
	assert.Contains(t, testutil.ReadZipEntry(t, output, "ppt/slides/slide1.xml"), "Jane Doe")
}

func TestConvert_NameAndRoleEntries(t *testing.T) {
	a, input := newTestApp(t)
	a.nameEntry.SetText("  J. Doe ")
	a.roleEntry.SetText("Staff Engineer")

	ov := a.formOverrides()
	assert.Equal(t, overrides{name: "J. Doe", role: "Staff Engineer"}, ov)

	output, err := a.convert(context.Background(), input, ov)
	require.NoError(t, err)

	slide := testutil.ReadZipEntry(t, output, "ppt/slides/slide1.xml")
	assert.Contains(t, slide, "J. Doe")
	assert.Contains(t, slide, "Staff Engineer")
}

func TestConvert_MissingTemplate(t *testing.T) {
	a, input := newTestApp(t)
	a.config.Template = filepath.Join(t.TempDir(), "none.pptx")

	output, err := a.convert(context.Background(), input, overrides{})

	require.Error(t, err)
	assert.Empty(t, output)
	assert.Contains(t, failureMessage(err), "Failed to open the PPT template")
}

func TestConvert_ReportFailureReturnsDeck(t *testing.T) {
	a, input := newTestApp(t)
	a.config.Report = filepath.Join(t.TempDir(), "missing", "review.xlsx")

	output, err := a.convert(context.Background(), input, overrides{})

	var reportErr *pipeline.ReportError
	require.True(t, errors.As(err, &reportErr), "got %v", err)
	assert.FileExists(t, output)
	assert.Contains(t, failureMessage(err), "review sheet could not be written")
}

func TestShowOutcome(t *testing.T) {
	a, _ := newTestApp(t)

	a.showOutcome("output/formatted_jane.pptx", nil)
	assert.Equal(t, "Saved output/formatted_jane.pptx", a.statusLabel.Text)
	assert.False(t, a.selectBtn.Disabled())

	a.showOutcome("output/formatted_jane.pptx", &pipeline.ReportError{Path: "review.xlsx", Cause: errors.New("denied")})
	assert.Equal(t, "Saved output/formatted_jane.pptx (review sheet failed)", a.statusLabel.Text)

	a.showOutcome("", &rendering.SaveError{Message: "denied"})
	assert.Equal(t, "Failed", a.statusLabel.Text)
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unsupported", err: &ingestion.UnsupportedFormatError{Ext: ".txt"}, want: "Please choose a .docx or .pdf résumé."},
		{name: "io", err: &ingestion.IOError{Path: "cv.pdf"}, want: "Failed to parse résumé"},
		{name: "corrupt", err: &ingestion.CorruptDocumentError{Path: "cv.docx"}, want: "Failed to parse résumé"},
		{name: "template", err: &rendering.TemplateLoadError{Message: "missing"}, want: "Failed to open the PPT template"},
		{name: "save", err: &rendering.SaveError{Message: "denied"}, want: "Failed to save the formatted PPT"},
		{name: "report", err: &pipeline.ReportError{Path: "review.xlsx", Cause: errors.New("denied")}, want: "The review sheet could not be written"},
		{name: "other", err: context.Canceled, want: "Failed to generate formatted PPT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, failureMessage(tt.err), tt.want)
		})
	}
}
