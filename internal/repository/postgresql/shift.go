package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, member_id, company_id, work_date,
	to_char(start_time, 'HH24:MI'), duration_minutes, created_at, updated_at`

// Upsert implements schedule.ShiftRepository. One statement per override,
// inside the caller's transaction when present; the conflict target makes
// repeated applications idempotent.
func (r *shiftRepository) Upsert(ctx context.Context, shifts []schedule.ShiftOverride) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_shifts (member_id, company_id, work_date, start_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (member_id, work_date)
		DO UPDATE SET start_time = EXCLUDED.start_time,
		              duration_minutes = EXCLUDED.duration_minutes,
		              updated_at = NOW()
	`

	for _, s := range shifts {
		_, err := q.Exec(ctx, query,
			s.MemberID, s.CompanyID, s.Date, s.StartTime.String(), s.DurationMinutes,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert shift for %s: %w", s.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}

// ListForRange implements schedule.ShiftRepository.
func (r *shiftRepository) ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]schedule.ShiftOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_shifts
		WHERE member_id = $1
		  AND company_id = $2
		  AND work_date BETWEEN $3 AND $4
		ORDER BY work_date ASC
	`, shiftColumns)

	rows, err := q.Query(ctx, query, memberID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// ListForCompanyRange implements schedule.ShiftRepository.
func (r *shiftRepository) ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]schedule.ShiftOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_shifts
		WHERE company_id = $1
		  AND work_date BETWEEN $2 AND $3
		ORDER BY member_id, work_date ASC
	`, shiftColumns)

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list company shifts: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]schedule.ShiftOverride, error) {
	var shifts []schedule.ShiftOverride
	for rows.Next() {
		var s schedule.ShiftOverride
		var startTime string
		if err := rows.Scan(
			&s.ID, &s.MemberID, &s.CompanyID, &s.Date,
			&startTime, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		tod, err := schedule.ParseTimeOfDay(startTime)
		if err != nil {
			return nil, fmt.Errorf("bad start_time on shift %s: %w", s.ID, err)
		}
		s.StartTime = tod
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}
	return shifts, nil
}
