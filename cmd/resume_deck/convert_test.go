package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-deck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var janeLines = []string{
	"Jane Doe – Senior Engineer",
	"jane@example.com | +1 555 123 4567",
	"Skills",
	"Go, Python",
	"Experience",
	"Engineer, Acme (2020 – Present)",
	"• Built the billing service",
}

func writeInputs(t *testing.T) (input, template, outDir string) {
	t.Helper()
	dir := t.TempDir()
	input = testutil.WriteFile(t, dir, "jane.docx", testutil.BuildDOCX(t, janeLines))
	template = testutil.WriteFile(t, dir, "Resume.pptx", testutil.BuildPPTX(t, testutil.StandardTemplate()))
	return input, template, filepath.Join(dir, "output")
}

func TestConvertCommand_WritesDeck(t *testing.T) {
	input, template, outDir := writeInputs(t)

	output, err := executeCommand(t, "convert", "--input", input, "--template", template, "--out-dir", outDir)
	require.NoError(t, err)

	deck := filepath.Join(outDir, "formatted_jane.pptx")
	assert.Contains(t, output, "Formatted deck saved to: "+deck)
	assert.Contains(t, testutil.ReadZipEntry(t, deck, "ppt/slides/slide1.xml"), "Jane Doe")
}

func TestConvertCommand_MissingInput(t *testing.T) {
	_, err := executeCommand(t, "convert")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input is required")
}

func TestConvertCommand_UnsupportedFormat(t *testing.T) {
	_, template, outDir := writeInputs(t)
	input := testutil.WriteFile(t, t.TempDir(), "cv.txt", []byte("Jane Doe"))

	_, err := executeCommand(t, "convert", "-i", input, "-t", template, "-o", outDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestConvertCommand_MissingTemplate(t *testing.T) {
	input, _, outDir := writeInputs(t)

	_, err := executeCommand(t, "convert", "-i", input, "-t", filepath.Join(t.TempDir(), "none.pptx"), "-o", outDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template")
}

func TestConvertCommand_InvalidTemplateExtension(t *testing.T) {
	input, _, outDir := writeInputs(t)

	_, err := executeCommand(t, "convert", "-i", input, "-t", "Resume.potx", "-o", outDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template must be a .pptx file")
}

func TestConvertCommand_ReportFailureStillSavesDeck(t *testing.T) {
	input, template, outDir := writeInputs(t)
	report := filepath.Join(t.TempDir(), "missing", "review.xlsx")

	output, err := executeCommand(t, "convert", "-i", input, "-t", template, "-o", outDir, "--report", report)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report failed")
	deck := filepath.Join(outDir, "formatted_jane.pptx")
	assert.Contains(t, output, "Formatted deck saved to: "+deck)
	assert.FileExists(t, deck)
}

func TestConvertCommand_ConfigFile(t *testing.T) {
	input, template, outDir := writeInputs(t)
	report := filepath.Join(t.TempDir(), "review.xlsx")
	cfg := `{"template": "` + filepath.ToSlash(template) + `", "output_dir": "` + filepath.ToSlash(outDir) + `", "report": "` + filepath.ToSlash(report) + `"}`
	configPath := testutil.WriteFile(t, t.TempDir(), "config.json", []byte(cfg))

	output, err := executeCommand(t, "convert", "-i", input, "--config", configPath, "--role", "Staff Engineer")
	require.NoError(t, err)

	assert.Contains(t, output, "Review sheet saved to:")
	assert.FileExists(t, filepath.Join(outDir, "formatted_jane.pptx"))
	assert.FileExists(t, report)
	assert.Contains(t, testutil.ReadZipEntry(t, filepath.Join(outDir, "formatted_jane.pptx"), "ppt/slides/slide1.xml"), "Staff Engineer")
}

func TestConvertCommand_FlagOverridesConfig(t *testing.T) {
	input, template, outDir := writeInputs(t)
	configPath := testutil.WriteFile(t, t.TempDir(), "config.json", []byte(`{"output_dir": "`+filepath.ToSlash(filepath.Join(t.TempDir(), "ignored"))+`"}`))

	_, err := executeCommand(t, "convert", "-i", input, "-t", template, "-o", outDir, "--config", configPath)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "formatted_jane.pptx"))
}

func TestConvertCommand_EnvTemplate(t *testing.T) {
	input, template, outDir := writeInputs(t)
	t.Setenv("RESUME_DECK_TEMPLATE", template)

	_, err := executeCommand(t, "convert", "-i", input, "-o", outDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "formatted_jane.pptx"))
	assert.NoError(t, err)
}

func TestConvertCommand_Verbose(t *testing.T) {
	input, template, outDir := writeInputs(t)

	output, err := executeCommand(t, "convert", "-i", input, "-t", template, "-o", outDir, "-v")
	require.NoError(t, err)

	assert.Contains(t, output, "EXTRACTED RESUME RECORD")
	assert.Contains(t, output, "[merge]")
}
