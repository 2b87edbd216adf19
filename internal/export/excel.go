// Package export writes the extracted Resume Record to an .xlsx review sheet.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-deck/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the review workbook
const (
	SheetSummary    = "Summary"
	SheetSkills     = "Skills"
	SheetExperience = "Experience"
	SheetEducation  = "Education"
)

// Source describes where the record came from; every field is optional
type Source struct {
	InputPath  string
	OutputPath string
	Hash       string
}

// ExportToExcel writes record to outputPath, adding the .xlsx extension when missing.
// It returns the path actually written.
func ExportToExcel(record *types.ResumeRecord, src Source, outputPath string) (string, error) {
	if record == nil {
		return "", fmt.Errorf("record is nil")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetSkills, SheetExperience, SheetEducation} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		return "", fmt.Errorf("failed to create styles: %w", err)
	}

	if err := createSummarySheet(f, styles, record, src); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}

	skillRows := make([][]any, 0, len(record.Skills))
	for i, s := range record.Skills {
		skillRows = append(skillRows, []any{i + 1, s})
	}
	if err := createTableSheet(f, styles, SheetSkills, []string{"#", "Skill"}, []float64{6, 40}, skillRows); err != nil {
		return "", fmt.Errorf("failed to create skills sheet: %w", err)
	}

	expRows := make([][]any, 0, len(record.Experience))
	for _, e := range record.Experience {
		expRows = append(expRows, []any{e.Position, e.Company, e.Dates, e.Description})
	}
	if err := createTableSheet(f, styles, SheetExperience,
		[]string{"Position", "Company", "Dates", "Description"}, []float64{30, 25, 20, 70}, expRows); err != nil {
		return "", fmt.Errorf("failed to create experience sheet: %w", err)
	}

	eduRows := make([][]any, 0, len(record.Education))
	for _, e := range record.Education {
		eduRows = append(eduRows, []any{e.Degree, e.Institution, e.Start, e.End})
	}
	if err := createTableSheet(f, styles, SheetEducation,
		[]string{"Degree", "Institution", "Start", "End"}, []float64{35, 35, 12, 12}, eduRows); err != nil {
		return "", fmt.Errorf("failed to create education sheet: %w", err)
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

type sheetStyles struct {
	header int
	label  int
	wrap   int
}

func newStyles(f *excelize.File) (*sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}

	label, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}

	return &sheetStyles{header: header, label: label, wrap: wrap}, nil
}

// createSummarySheet writes the scalar fields as label/value pairs
func createSummarySheet(f *excelize.File, styles *sheetStyles, record *types.ResumeRecord, src Source) error {
	sheet := SheetSummary
	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 70); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Resume Record"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", styles.header); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return err
	}

	pairs := [][2]string{
		{"Name", record.Name},
		{"Role", record.Role},
		{"Email", record.Email},
		{"Phone", record.Phone},
		{"Address", record.Address},
		{"Summary", record.Summary},
		{"Skills", fmt.Sprint(len(record.Skills))},
		{"Experience", fmt.Sprint(len(record.Experience))},
		{"Education", fmt.Sprint(len(record.Education))},
		{"Source", src.InputPath},
		{"SHA256", src.Hash},
		{"Deck", src.OutputPath},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
	}

	row := 3
	for _, p := range pairs {
		labelCell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, labelCell, p[0]+":"); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, styles.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p[1]); err != nil {
			return err
		}
		row++
	}
	return nil
}

// createTableSheet writes a header row followed by one row per entry
func createTableSheet(f *excelize.File, styles *sheetStyles, sheet string, headers []string, widths []float64, rows [][]any) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, widths[col]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for i, values := range rows {
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(len(values), i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, start, end, styles.wrap); err != nil {
			return err
		}
	}

	if len(rows) > 0 {
		return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	}
	return nil
}
