package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const conversionColumns = `id, input_path, input_format, input_hash, template_path, output_path,
	status, record, filled, error_message, created_at, completed_at`

// CreateConversion inserts a running conversion. A nil input ID is replaced by a new UUID.
func (db *DB) CreateConversion(ctx context.Context, input ConversionInput) (uuid.UUID, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO conversions (id, input_path, input_format, template_path, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, input.InputPath, input.InputFormat, input.TemplatePath, StatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create conversion: %w", err)
	}
	return id, nil
}

// CompleteConversion stores the outcome of a conversion and marks it completed or failed
func (db *DB) CompleteConversion(ctx context.Context, id uuid.UUID, outcome ConversionOutcome) error {
	var recordJSON []byte
	if outcome.Record != nil {
		var err error
		recordJSON, err = json.Marshal(outcome.Record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
	}

	var errorMsg *string
	if outcome.Error != "" {
		errorMsg = &outcome.Error
	}

	filled := outcome.Filled
	if filled == nil {
		filled = []string{}
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE conversions
		 SET status = $1, input_hash = $2, output_path = $3, record = $4, filled = $5,
		     error_message = $6, completed_at = NOW()
		 WHERE id = $7`,
		outcome.Status(), outcome.InputHash, outcome.OutputPath, recordJSON, filled, errorMsg, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete conversion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("conversion not found: %s", id)
	}
	return nil
}

// GetConversion retrieves a conversion by ID. It returns nil, nil when none exists.
func (db *DB) GetConversion(ctx context.Context, id uuid.UUID) (*Conversion, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+conversionColumns+` FROM conversions WHERE id = $1`, id)

	c, err := scanConversion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	return c, nil
}

// ListConversions retrieves recent conversions, newest first
func (db *DB) ListConversions(ctx context.Context, filters ConversionFilters) ([]Conversion, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.InputHash != "" {
		query += fmt.Sprintf(" AND input_hash = $%d", argNum)
		args = append(args, filters.InputHash)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var conversions []Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, *c)
	}
	return conversions, rows.Err()
}

// DeleteConversion deletes a conversion and its steps (via cascade)
func (db *DB) DeleteConversion(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM conversions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conversion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("conversion not found: %s", id)
	}
	return nil
}

func scanConversion(row pgx.Row) (*Conversion, error) {
	var c Conversion
	var record []byte
	if err := row.Scan(&c.ID, &c.InputPath, &c.InputFormat, &c.InputHash, &c.TemplatePath,
		&c.OutputPath, &c.Status, &record, &c.Filled, &c.ErrorMessage, &c.CreatedAt, &c.CompletedAt); err != nil {
		return nil, err
	}
	if len(record) > 0 {
		c.Record = json.RawMessage(record)
	}
	return &c, nil
}
