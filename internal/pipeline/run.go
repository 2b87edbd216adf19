// Package pipeline provides the high-level orchestration of a résumé-to-deck conversion.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-deck/internal/db"
	"github.com/jonathan/resume-deck/internal/export"
	"github.com/jonathan/resume-deck/internal/ingestion"
	"github.com/jonathan/resume-deck/internal/observability"
	"github.com/jonathan/resume-deck/internal/parsing"
	"github.com/jonathan/resume-deck/internal/rendering"
	"github.com/jonathan/resume-deck/internal/types"
)

// OutputPrefix is prepended to the input base name to build the deck file name
const OutputPrefix = "formatted_"

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath    string
	TemplatePath string
	OutputDir    string
	ReportPath   string // optional .xlsx review sheet
	DatabaseURL  string // optional conversion history

	// Name and Role replace the extracted values when set
	Name string
	Role string

	Verbose    bool
	Out        io.Writer // verbose boxes; defaults to os.Stdout
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// ReportError means the deck was saved but the review sheet could not be
// written. Run returns its Result alongside it.
type ReportError struct {
	Path  string
	Cause error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report failed: %s: %v", e.Path, e.Cause)
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// Result is everything a successful run produced
type Result struct {
	RunID      uuid.UUID
	Record     *types.ResumeRecord
	Metadata   *ingestion.Metadata
	Merge      *rendering.MergeResult
	OutputPath string
	ReportPath string
}

// OutputPath returns <outputDir>/formatted_<input name without extension>.pptx
func OutputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, OutputPrefix+name+".pptx")
}

// Extract reads and parses a résumé without touching any template
func Extract(path string) (*types.ResumeRecord, *ingestion.Metadata, error) {
	lines, meta, err := ingestion.IngestFile(path)
	if err != nil {
		return nil, nil, err
	}
	return parsing.ParseLines(lines), meta, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// Run converts opts.InputPath into a single-slide deck built from opts.TemplatePath.
// Unsupported inputs are rejected before the template is opened. When only the
// review sheet fails, the Result comes back together with a *ReportError.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.InputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if opts.TemplatePath == "" {
		return nil, fmt.Errorf("template path is required")
	}
	if opts.Logger == nil {
		opts.Logger = observability.Discard()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	if err := ingestion.CheckFormat(opts.InputPath); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := opts.Logger.With(slog.String("run_id", runID.String()))
	printer := observability.NewPrinter(opts.Out)
	rec := openRecorder(ctx, opts, runID, logger)
	defer rec.close()

	result, err := run(ctx, opts, runID, logger, printer, rec)
	outcome := db.ConversionOutcome{}
	if result != nil {
		outcome.OutputPath = result.OutputPath
		outcome.Record = result.Record
		if result.Metadata != nil {
			outcome.InputHash = result.Metadata.Hash
		}
		if result.Merge != nil {
			outcome.Filled = result.Merge.Filled
		}
	}
	if err != nil {
		outcome.Error = err.Error()
		logger.Error("conversion failed", slog.Any("error", err))
	}
	rec.complete(ctx, outcome)

	if err != nil {
		var reportErr *ReportError
		if errors.As(err, &reportErr) {
			return result, err
		}
		return nil, err
	}
	return result, nil
}

func run(ctx context.Context, opts RunOptions, runID uuid.UUID, logger *slog.Logger, printer *observability.Printer, rec *recorder) (*Result, error) {
	result := &Result{RunID: runID}

	// Step 1: extract lines
	start := time.Now()
	lines, meta, err := ingestion.IngestFile(opts.InputPath)
	rec.step(ctx, db.StepExtract, start, err)
	if err != nil {
		return result, fmt.Errorf("extraction failed: %w", err)
	}
	result.Metadata = meta
	logger.Info("extracted document", slog.String("path", meta.Path), slog.Int("lines", meta.LineCount))
	if opts.Verbose {
		printer.PrintDocument(meta)
	}
	emitProgress(&opts, runID, db.StepExtract, fmt.Sprintf("Extracted %d lines from %s", meta.LineCount, filepath.Base(opts.InputPath)), meta)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Step 2: parse record
	start = time.Now()
	record := parsing.ParseLines(lines)
	if opts.Name != "" {
		record.Name = opts.Name
	}
	if opts.Role != "" {
		record.Role = opts.Role
	}
	if err := record.Validate(); err != nil {
		rec.step(ctx, db.StepParse, start, err)
		return result, fmt.Errorf("invalid résumé record: %w", err)
	}
	result.Record = record
	rec.step(ctx, db.StepParse, start, nil)
	logger.Debug("parsed record",
		slog.String("name", record.Name),
		slog.Int("skills", len(record.Skills)),
		slog.Int("experience", len(record.Experience)),
		slog.Int("education", len(record.Education)))
	if opts.Verbose {
		printer.PrintResumeRecord(record)
	}
	emitProgress(&opts, runID, db.StepParse, fmt.Sprintf("Parsed résumé for %q", record.Name), record)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Step 3: merge into the template
	start = time.Now()
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		err = &rendering.SaveError{Message: fmt.Sprintf("failed to create output directory %s", opts.OutputDir), Cause: err}
		rec.step(ctx, db.StepMerge, start, err)
		return result, err
	}
	outputPath := OutputPath(opts.OutputDir, opts.InputPath)
	merged, err := rendering.Merge(record, opts.TemplatePath, outputPath)
	rec.step(ctx, db.StepMerge, start, err)
	if err != nil {
		return result, fmt.Errorf("merge failed: %w", err)
	}
	result.Merge = merged
	result.OutputPath = merged.OutputPath
	logger.Info("wrote deck", slog.String("output", merged.OutputPath), slog.Int("filled", len(merged.Filled)))
	if opts.Verbose {
		printer.PrintMergeResult(merged)
	}
	emitProgress(&opts, runID, db.StepMerge, fmt.Sprintf("Saved %s", merged.OutputPath), merged)

	// Step 4: optional review sheet
	if opts.ReportPath == "" {
		rec.skip(ctx, db.StepReport)
		return result, nil
	}
	start = time.Now()
	reportPath, err := export.ExportToExcel(record, export.Source{
		InputPath:  opts.InputPath,
		OutputPath: merged.OutputPath,
		Hash:       meta.Hash,
	}, opts.ReportPath)
	rec.step(ctx, db.StepReport, start, err)
	if err != nil {
		return result, &ReportError{Path: opts.ReportPath, Cause: err}
	}
	result.ReportPath = reportPath
	logger.Info("wrote report", slog.String("report", reportPath))
	emitProgress(&opts, runID, db.StepReport, fmt.Sprintf("Saved %s", reportPath), nil)

	return result, nil
}

// recorder writes conversion history when a database is configured.
// Every method is a no-op when it is not.
type recorder struct {
	database *db.DB
	id       uuid.UUID
	logger   *slog.Logger
}

func openRecorder(ctx context.Context, opts RunOptions, runID uuid.UUID, logger *slog.Logger) *recorder {
	rec := &recorder{id: runID, logger: logger}
	if opts.DatabaseURL == "" {
		return rec
	}

	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		logger.Warn("continuing without conversion history", slog.Any("error", err))
		return rec
	}
	if err := database.Migrate(ctx); err != nil {
		logger.Warn("continuing without conversion history", slog.Any("error", err))
		database.Close()
		return rec
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.InputPath)), ".")
	if _, err := database.CreateConversion(ctx, db.ConversionInput{
		ID:           runID,
		InputPath:    opts.InputPath,
		InputFormat:  format,
		TemplatePath: opts.TemplatePath,
	}); err != nil {
		logger.Warn("continuing without conversion history", slog.Any("error", err))
		database.Close()
		return rec
	}

	logger.Debug("recording conversion history")
	rec.database = database
	return rec
}

func (r *recorder) step(ctx context.Context, name string, start time.Time, stepErr error) {
	if r.database == nil {
		return
	}
	input := db.StepInput{
		Step:       name,
		Status:     db.StepStatusCompleted,
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if stepErr != nil {
		input.Status = db.StepStatusFailed
		input.Error = stepErr.Error()
	}
	if err := r.database.RecordStep(ctx, r.id, input); err != nil {
		r.logger.Warn("failed to record step", slog.String("step", name), slog.Any("error", err))
	}
}

func (r *recorder) skip(ctx context.Context, name string) {
	if r.database == nil {
		return
	}
	if err := r.database.RecordStep(ctx, r.id, db.StepInput{Step: name, Status: db.StepStatusSkipped}); err != nil {
		r.logger.Warn("failed to record step", slog.String("step", name), slog.Any("error", err))
	}
}

func (r *recorder) complete(ctx context.Context, outcome db.ConversionOutcome) {
	if r.database == nil {
		return
	}
	// history is written even when the run was cancelled
	if err := r.database.CompleteConversion(context.WithoutCancel(ctx), r.id, outcome); err != nil {
		r.logger.Warn("failed to complete conversion", slog.Any("error", err))
	}
}

func (r *recorder) close() {
	if r.database != nil {
		r.database.Close()
	}
}
