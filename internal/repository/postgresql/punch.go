package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `id, member_id, company_id, kind, punched_at, created_at`

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (member_id, company_id, kind, punched_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, p.MemberID, p.CompanyID, string(p.Kind), p.Timestamp).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListForDay implements punch.PunchRepository.
func (r *punchRepository) ListForDay(ctx context.Context, memberID string, dayStart time.Time, companyID string) ([]punch.Punch, error) {
	return r.ListForRange(ctx, memberID, dayStart, dayStart.AddDate(0, 0, 1), companyID)
}

// ListForRange implements punch.PunchRepository.
func (r *punchRepository) ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_entries
		WHERE member_id = $1
		  AND company_id = $2
		  AND punched_at >= $3
		  AND punched_at < $4
		ORDER BY punched_at ASC
	`, punchColumns)

	rows, err := q.Query(ctx, query, memberID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListForCompanyRange implements punch.PunchRepository.
func (r *punchRepository) ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_entries
		WHERE company_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY member_id, punched_at ASC
	`, punchColumns)

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list company punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		var kind string
		if err := rows.Scan(&p.ID, &p.MemberID, &p.CompanyID, &kind, &p.Timestamp, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		p.Kind = punch.Kind(kind)
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}
	return punches, nil
}
