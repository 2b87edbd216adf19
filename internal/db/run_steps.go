package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordStep stores the result of one pipeline step of a conversion.
// Recording the same step twice overwrites the earlier row.
func (db *DB) RecordStep(ctx context.Context, conversionID uuid.UUID, input StepInput) error {
	var errorMsg *string
	if input.Error != "" {
		errorMsg = &input.Error
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO conversion_steps (conversion_id, step, status, duration_ms, error_message)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (conversion_id, step) DO UPDATE
		 SET status = EXCLUDED.status, duration_ms = EXCLUDED.duration_ms,
		     error_message = EXCLUDED.error_message, created_at = NOW()`,
		conversionID, input.Step, input.Status, input.DurationMs, errorMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to record step %s: %w", input.Step, err)
	}
	return nil
}

// ListSteps retrieves the steps of a conversion in the order they were recorded
func (db *DB) ListSteps(ctx context.Context, conversionID uuid.UUID) ([]Step, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT conversion_id, step, status, duration_ms, error_message, created_at
		 FROM conversion_steps
		 WHERE conversion_id = $1
		 ORDER BY created_at`,
		conversionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var s Step
		if err := rows.Scan(&s.ConversionID, &s.Step, &s.Status, &s.DurationMs, &s.ErrorMessage, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}
