package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/jonathan/resume-deck/internal/config"
	"github.com/jonathan/resume-deck/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions recorded in the database",
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyStatus      string
	historyLimit       int
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "Only show conversions with this status (running, completed, failed)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of conversions to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = config.FromEnv().DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}
	switch historyStatus {
	case "", db.StatusRunning, db.StatusCompleted, db.StatusFailed:
	default:
		return fmt.Errorf("invalid --status %q", historyStatus)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	conversions, err := database.ListConversions(ctx, db.ConversionFilters{Status: historyStatus, Limit: historyLimit})
	if err != nil {
		return err
	}

	if len(conversions) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTARTED\tSTATUS\tINPUT\tOUTPUT")
	for _, c := range conversions {
		output := c.OutputPath
		if c.ErrorMessage != nil {
			output = *c.ErrorMessage
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04"), c.Status, c.InputPath, output)
	}
	return w.Flush()
}
