// Package gui provides the desktop file-picker front end.
package gui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/ingestion"
	"github.com/jonathan/resume-deck/internal/pipeline"
	"github.com/jonathan/resume-deck/internal/rendering"
)

// App represents the main GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	config     config.Config
	logger     *slog.Logger

	// UI Components
	nameEntry   *widget.Entry
	roleEntry   *widget.Entry
	selectBtn   *widget.Button
	statusLabel *widget.Label
}

// NewApp creates the main window on a. cfg must already carry defaults.
func NewApp(a fyne.App, cfg config.Config, logger *slog.Logger) *App {
	w := a.NewWindow("Résumé → PPT Formatter")
	w.Resize(fyne.NewSize(420, 220))
	w.SetFixedSize(true)

	guiApp := &App{
		fyneApp:    a,
		mainWindow: w,
		config:     cfg,
		logger:     logger,
	}
	guiApp.setupUI()
	return guiApp
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// setupUI initializes all UI components
func (a *App) setupUI() {
	a.nameEntry = widget.NewEntry()
	a.nameEntry.SetPlaceHolder("Use the name from the résumé")
	a.roleEntry = widget.NewEntry()
	a.roleEntry.SetPlaceHolder("Use the role from the résumé")

	a.selectBtn = widget.NewButton("Select & Format Résumé", a.handleSelect)
	a.statusLabel = widget.NewLabel("Ready")

	a.mainWindow.SetContent(container.NewVBox(
		widget.NewLabel("Upload your résumé to generate the formatted PPT:"),
		widget.NewForm(
			widget.NewFormItem("Name", a.nameEntry),
			widget.NewFormItem("Role", a.roleEntry),
		),
		a.selectBtn,
		a.statusLabel,
	))
}

// handleSelect opens the file picker restricted to supported résumé types
func (a *App) handleSelect() {
	picker := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return // user cancelled
		}
		path := uc.URI().Path()
		_ = uc.Close()
		a.startConversion(path)
	}, a.mainWindow)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{ingestion.ExtDOCX, ingestion.ExtPDF}))
	picker.Show()
}

// overrides holds the name and role typed into the form
type overrides struct {
	name string
	role string
}

// formOverrides reads the entries. Call it on the UI thread only.
func (a *App) formOverrides() overrides {
	return overrides{
		name: strings.TrimSpace(a.nameEntry.Text),
		role: strings.TrimSpace(a.roleEntry.Text),
	}
}

// startConversion runs the pipeline off the UI thread
func (a *App) startConversion(path string) {
	a.selectBtn.Disable()
	a.statusLabel.SetText("Formatting " + path + "...")
	ov := a.formOverrides()

	go func() {
		output, err := a.convert(context.Background(), path, ov)

		// All UI updates must be done on the main thread using fyne.Do
		fyne.Do(func() {
			a.showOutcome(output, err)
		})
	}()
}

// showOutcome reports a finished conversion. A deck saved with a failed
// review sheet is still a success, with a warning attached.
func (a *App) showOutcome(output string, err error) {
	a.selectBtn.Enable()
	switch {
	case err == nil:
		a.statusLabel.SetText("Saved " + output)
		dialog.ShowInformation("Success", "Formatted PPT saved to:\n"+output, a.mainWindow)
	case output != "":
		a.statusLabel.SetText("Saved " + output + " (review sheet failed)")
		dialog.ShowInformation("Saved with warnings", "Formatted PPT saved to:\n"+output+"\n\n"+failureMessage(err), a.mainWindow)
	default:
		a.statusLabel.SetText("Failed")
		dialog.ShowError(errors.New(failureMessage(err)), a.mainWindow)
	}
}

// convert formats one résumé and returns the deck path. The path is also
// returned with a *pipeline.ReportError, since the deck exists by then.
func (a *App) convert(ctx context.Context, path string, ov overrides) (string, error) {
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		InputPath:    path,
		TemplatePath: a.config.Template,
		OutputDir:    a.config.OutputDir,
		ReportPath:   a.config.Report,
		DatabaseURL:  a.config.DatabaseURL,
		Name:         ov.name,
		Role:         ov.role,
		Logger:       a.logger,
	})
	if result != nil {
		return result.OutputPath, err
	}
	return "", err
}

// failureMessage turns a pipeline error into the text shown in the error dialog
func failureMessage(err error) string {
	var unsupported *ingestion.UnsupportedFormatError
	var ioErr *ingestion.IOError
	var corrupt *ingestion.CorruptDocumentError
	var loadErr *rendering.TemplateLoadError
	var saveErr *rendering.SaveError
	var reportErr *pipeline.ReportError

	switch {
	case errors.As(err, &reportErr):
		return fmt.Sprintf("The review sheet could not be written:\n%v", err)
	case errors.As(err, &unsupported):
		return "Please choose a .docx or .pdf résumé.\n" + err.Error()
	case errors.As(err, &ioErr), errors.As(err, &corrupt):
		return fmt.Sprintf("Failed to parse résumé:\n%v", err)
	case errors.As(err, &loadErr):
		return fmt.Sprintf("Failed to open the PPT template:\n%v", err)
	case errors.As(err, &saveErr):
		return fmt.Sprintf("Failed to save the formatted PPT:\n%v", err)
	default:
		return fmt.Sprintf("Failed to generate formatted PPT:\n%v", err)
	}
}
