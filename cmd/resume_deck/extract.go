package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-deck/internal/observability"
	"github.com/jonathan/resume-deck/internal/pipeline"
	"github.com/jonathan/resume-deck/internal/schemas"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a résumé into Resume Record JSON",
	Long:  "Parse a .docx or .pdf résumé into Resume Record JSON that validates against schemas/resume_record.schema.json. No template is read.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "input", "i", "", "Path to the résumé (.docx or .pdf)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print the record summary to stderr")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractInputFile == "" {
		return fmt.Errorf("--input is required")
	}

	record, meta, err := pipeline.Extract(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to extract résumé: %w", err)
	}

	if err := schemas.ValidateRecord(record); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("extracted record does not validate against schema: %w", err)
		}
		// Schema loading issue - log warning and continue
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate record against schema: %v\n", err)
	}

	if extractVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintDocument(meta)
		printer.PrintResumeRecord(record)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutputFile == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted résumé record\n")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", extractOutputFile)
	return nil
}
