package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/observability"
	"github.com/jonathan/resume-deck/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a résumé into a formatted single-slide deck",
	Long: `Extracts the fields of a .docx or .pdf résumé and writes them into the template,
saving <out-dir>/formatted_<name>.pptx.

Configuration can be loaded from a JSON file using --config. Command-line arguments override
config file values, which override RESUME_DECK_TEMPLATE, RESUME_DECK_OUTPUT_DIR and DATABASE_URL.`,
	RunE: runConvert,
}

var (
	convertConfigPath  string
	convertInput       string
	convertTemplate    string
	convertOutDir      string
	convertReport      string
	convertName        string
	convertRole        string
	convertDatabaseURL string
	convertLogLevel    string
	convertVerbose     bool
)

func init() {
	// Config file flag (processed first)
	convertCmd.Flags().StringVar(&convertConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Path to the résumé (.docx or .pdf)")
	convertCmd.Flags().StringVarP(&convertTemplate, "template", "t", "", "Path to the .pptx template (default "+config.DefaultTemplate+")")
	convertCmd.Flags().StringVarP(&convertOutDir, "out-dir", "o", "", "Directory for the formatted deck (default "+config.DefaultOutputDir+")")
	convertCmd.Flags().StringVar(&convertReport, "report", "", "Also write the extracted record to this .xlsx file")
	convertCmd.Flags().StringVar(&convertName, "name", "", "Candidate name (replaces the extracted name)")
	convertCmd.Flags().StringVar(&convertRole, "role", "", "Candidate role (replaces the extracted role)")
	convertCmd.Flags().StringVar(&convertDatabaseURL, "db-url", "", "PostgreSQL URL for conversion history (optional, defaults to DATABASE_URL env var)")
	convertCmd.Flags().StringVar(&convertLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if convertInput == "" {
		return fmt.Errorf("--input is required")
	}

	// Only override if the flag was explicitly set
	var flags config.Config
	if cmd.Flags().Changed("template") {
		flags.Template = convertTemplate
	}
	if cmd.Flags().Changed("out-dir") {
		flags.OutputDir = convertOutDir
	}
	if cmd.Flags().Changed("report") {
		flags.Report = convertReport
	}
	if cmd.Flags().Changed("db-url") {
		flags.DatabaseURL = convertDatabaseURL
	}
	if cmd.Flags().Changed("log-level") {
		flags.LogLevel = convertLogLevel
	}
	flags.Verbose = convertVerbose

	cfg, err := resolveConfig(convertConfigPath, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		_, _ = fmt.Fprintf(out, "Template: %s\nOutput directory: %s\n", cfg.Template, cfg.OutputDir)
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		InputPath:    convertInput,
		TemplatePath: cfg.Template,
		OutputDir:    cfg.OutputDir,
		ReportPath:   cfg.Report,
		DatabaseURL:  cfg.DatabaseURL,
		Name:         convertName,
		Role:         convertRole,
		Verbose:      cfg.Verbose,
		Out:          out,
		Logger:       observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.Verbose),
		OnProgress: func(event pipeline.ProgressEvent) {
			if cfg.Verbose {
				_, _ = fmt.Fprintf(out, "[%s] %s\n", event.Step, event.Message)
			}
		},
	})
	var reportErr *pipeline.ReportError
	if err != nil && !errors.As(err, &reportErr) {
		return err
	}

	_, _ = fmt.Fprintf(out, "Formatted deck saved to: %s\n", result.OutputPath)
	if reportErr != nil {
		return reportErr
	}
	if result.ReportPath != "" {
		_, _ = fmt.Fprintf(out, "Review sheet saved to: %s\n", result.ReportPath)
	}
	return nil
}
