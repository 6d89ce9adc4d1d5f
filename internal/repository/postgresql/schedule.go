package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// scheduleRow bridges the Postgres column types: work_days is a text array,
// the fixed window columns are nullable "HH:MM" strings.
type scheduleRow struct {
	cfg        schedule.Config
	fixedStart *string
	fixedEnd   *string
}

func (sr *scheduleRow) toConfig() (schedule.Config, error) {
	cfg := sr.cfg
	if sr.fixedStart != nil {
		tod, err := schedule.ParseTimeOfDay(*sr.fixedStart)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("bad fixed_start_time for member %s: %w", cfg.MemberID, err)
		}
		cfg.FixedStart = &tod
	}
	if sr.fixedEnd != nil {
		tod, err := schedule.ParseTimeOfDay(*sr.fixedEnd)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("bad fixed_end_time for member %s: %w", cfg.MemberID, err)
		}
		cfg.FixedEnd = &tod
	}
	return cfg, nil
}

const scheduleColumns = `
	id, company_id, schedule_type, work_days,
	to_char(fixed_start_time, 'HH24:MI'), to_char(fixed_end_time, 'HH24:MI'),
	tolerance_minutes, work_hours_minutes, joined_at, updated_at`

// GetByMember implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByMember(ctx context.Context, memberID string, companyID string) (schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM company_members
		WHERE id = $1 AND company_id = $2
	`, scheduleColumns)

	var row scheduleRow
	err := q.QueryRow(ctx, query, memberID, companyID).Scan(
		&row.cfg.MemberID, &row.cfg.CompanyID, &row.cfg.Type, &row.cfg.WorkDays,
		&row.fixedStart, &row.fixedEnd,
		&row.cfg.ToleranceMinutes, &row.cfg.FallbackDailyMinutes,
		&row.cfg.JoinedOn, &row.cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Config{}, schedule.ErrScheduleNotFound
		}
		return schedule.Config{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return row.toConfig()
}

// ListByCompany implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByCompany(ctx context.Context, companyID string) ([]schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM company_members
		WHERE company_id = $1 AND role = 'employee'
		ORDER BY full_name ASC
	`, scheduleColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var configs []schedule.Config
	for rows.Next() {
		var row scheduleRow
		if err := rows.Scan(
			&row.cfg.MemberID, &row.cfg.CompanyID, &row.cfg.Type, &row.cfg.WorkDays,
			&row.fixedStart, &row.fixedEnd,
			&row.cfg.ToleranceMinutes, &row.cfg.FallbackDailyMinutes,
			&row.cfg.JoinedOn, &row.cfg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		cfg, err := row.toConfig()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedules: %w", err)
	}
	return configs, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, cfg schedule.Config) error {
	q := GetQuerier(ctx, r.db)

	var fixedStart, fixedEnd *string
	if cfg.FixedStart != nil {
		s := cfg.FixedStart.String()
		fixedStart = &s
	}
	if cfg.FixedEnd != nil {
		s := cfg.FixedEnd.String()
		fixedEnd = &s
	}

	query := `
		UPDATE company_members
		SET schedule_type = $1,
		    work_days = $2,
		    fixed_start_time = $3,
		    fixed_end_time = $4,
		    tolerance_minutes = $5,
		    work_hours_minutes = $6,
		    updated_at = NOW()
		WHERE id = $7 AND company_id = $8
	`

	tag, err := q.Exec(ctx, query,
		string(cfg.Type), cfg.WorkDays, fixedStart, fixedEnd,
		cfg.ToleranceMinutes, cfg.FallbackDailyMinutes,
		cfg.MemberID, cfg.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
