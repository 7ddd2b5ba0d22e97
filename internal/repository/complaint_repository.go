package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
)

type ComplaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Initialize creates the complaints table if it does not already exist.
// Safe to call on every startup.
func (r *ComplaintRepository) Initialize(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS complaints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			location TEXT NOT NULL,
			complaint_type TEXT NOT NULL,
			resolution_time REAL NOT NULL,
			satisfaction_score INTEGER NOT NULL,
			agent_name TEXT NOT NULL,
			call_duration REAL NOT NULL,
			status TEXT NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create complaints table: %w", err)
	}
	return nil
}

// Insert appends one or more records in a single transaction. The store
// assigns each record a fresh id; either every record is written or none is.
func (r *ComplaintRepository) Insert(ctx context.Context, records []models.NewComplaintRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO complaints
			(timestamp, location, complaint_type, resolution_time,
			 satisfaction_score, agent_name, call_duration, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		ts := rec.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		_, err := stmt.ExecContext(ctx,
			ts.Format(models.TimestampLayout),
			rec.Location,
			rec.ComplaintType,
			rec.ResolutionTime,
			rec.SatisfactionScore,
			rec.AgentName,
			rec.CallDuration,
			rec.Status,
		)
		if err != nil {
			return fmt.Errorf("insert complaint: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

// All returns every stored record in id order.
func (r *ComplaintRepository) All(ctx context.Context) ([]models.ComplaintRecord, error) {
	const query = `
		SELECT id, timestamp, location, complaint_type, resolution_time,
		       satisfaction_score, agent_name, call_duration, status
		FROM complaints
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query complaints: %w", err)
	}
	defer rows.Close()

	var records []models.ComplaintRecord
	for rows.Next() {
		var rec models.ComplaintRecord
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.Location, &rec.ComplaintType,
			&rec.ResolutionTime, &rec.SatisfactionScore, &rec.AgentName,
			&rec.CallDuration, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan complaint row: %w", err)
		}
		rec.Timestamp, err = time.Parse(models.TimestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse complaint timestamp %q: %w", ts, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate complaints: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records without loading them.
func (r *ComplaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return count, nil
}

// ClearAll removes every record. A no-op on an already-empty store.
func (r *ComplaintRepository) ClearAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM complaints`); err != nil {
		return fmt.Errorf("clear complaints: %w", err)
	}
	return nil
}
