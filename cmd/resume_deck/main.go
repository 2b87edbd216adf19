// Package main provides the resume_deck command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_deck",
	Short: "Résumé to single-slide deck converter",
	Long: `resume_deck reads a .docx or .pdf résumé, extracts its structured fields and writes
them into the labelled regions of a one-slide .pptx template, keeping the template's styling.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
