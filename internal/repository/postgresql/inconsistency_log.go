package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type inconsistencyLogRepository struct {
	db *database.DB
}

func NewInconsistencyLogRepository(db *database.DB) evaluation.InconsistencyLogRepository {
	return &inconsistencyLogRepository{db: db}
}

// RecordAbsences implements evaluation.InconsistencyLogRepository. The
// conflict target on (member_id, date) keeps the sweep idempotent across
// runs.
func (r *inconsistencyLogRepository) RecordAbsences(ctx context.Context, entries []evaluation.InconsistencyLogEntry) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO inconsistency_log (company_id, member_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (member_id, date) DO NOTHING
	`

	inserted := 0
	for _, e := range entries {
		tag, err := q.Exec(ctx, query, e.CompanyID, e.MemberID, e.Date, string(e.Status))
		if err != nil {
			return inserted, fmt.Errorf("failed to record absence for member %s: %w", e.MemberID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListForRange implements evaluation.InconsistencyLogRepository.
func (r *inconsistencyLogRepository) ListForRange(ctx context.Context, companyID string, start, end time.Time) ([]evaluation.InconsistencyLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, member_id, date, status, detected_at
		FROM inconsistency_log
		WHERE company_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date DESC, member_id ASC
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list inconsistency log: %w", err)
	}
	defer rows.Close()

	var entries []evaluation.InconsistencyLogEntry
	for rows.Next() {
		var e evaluation.InconsistencyLogEntry
		var status string
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.MemberID, &e.Date, &status, &e.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inconsistency log entry: %w", err)
		}
		e.Status = evaluation.Status(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inconsistency log: %w", err)
	}
	return entries, nil
}
