// Package main provides the desktop entry point of resume_deck.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/gui"
	"github.com/jonathan/resume-deck/internal/observability"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	fromEnv := config.FromEnv()
	cfg := fromEnv.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, false)
	gui.NewApp(app.NewWithID("io.github.jonathan.resume-deck"), cfg, logger).Run()
}
