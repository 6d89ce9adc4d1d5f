package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

const justificationColumns = `
	j.id, j.member_id, j.company_id, j.date, j.reason, j.status,
	j.attachment_ref, j.admin_notes, j.reviewed_by, j.reviewed_at, j.created_at`

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (member_id, company_id, date, reason, status, attachment_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		j.MemberID, j.CompanyID, j.Date, j.Reason, string(justification.StatusPending), j.AttachmentRef,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return justification.Justification{}, justification.ErrAlreadyExists
		}
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	j.Status = justification.StatusPending
	return j, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string, companyID string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM justifications j
		WHERE j.id = $1 AND j.company_id = $2
	`, justificationColumns)

	var j justification.Justification
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&j.ID, &j.MemberID, &j.CompanyID, &j.Date, &j.Reason, &j.Status,
		&j.AttachmentRef, &j.AdminNotes, &j.ReviewedBy, &j.ReviewedAt, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification: %w", err)
	}
	return j, nil
}

// ListForRange implements justification.JustificationRepository.
func (r *justificationRepository) ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM justifications j
		WHERE j.member_id = $1
		  AND j.company_id = $2
		  AND j.date BETWEEN $3 AND $4
		ORDER BY j.date ASC
	`, justificationColumns)

	rows, err := q.Query(ctx, query, memberID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows, false)
}

// ListForCompanyRange implements justification.JustificationRepository.
func (r *justificationRepository) ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, m.full_name
		FROM justifications j
		JOIN company_members m ON m.id = j.member_id
		WHERE j.company_id = $1
		  AND j.date BETWEEN $2 AND $3
		ORDER BY j.member_id, j.date ASC
	`, justificationColumns)

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list company justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows, true)
}

// ListByStatus implements justification.JustificationRepository.
func (r *justificationRepository) ListByStatus(ctx context.Context, companyID string, status justification.Status) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, m.full_name
		FROM justifications j
		JOIN company_members m ON m.id = j.member_id
		WHERE j.company_id = $1
		  AND j.status = $2
		ORDER BY j.created_at DESC
	`, justificationColumns)

	rows, err := q.Query(ctx, query, companyID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications by status: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows, true)
}

// UpdateStatus implements justification.JustificationRepository. The status
// guard in the WHERE clause makes the PENDING-only transition atomic.
func (r *justificationRepository) UpdateStatus(ctx context.Context, id string, companyID string, status justification.Status, reviewedBy string, adminNotes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET status = $1,
		    admin_notes = $2,
		    reviewed_by = $3,
		    reviewed_at = NOW()
		WHERE id = $4 AND company_id = $5 AND status = $6
	`

	tag, err := q.Exec(ctx, query,
		string(status), adminNotes, reviewedBy, id, companyID, string(justification.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to update justification status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already reviewed; let the service distinguish.
		return justification.ErrAlreadyProcessed
	}
	return nil
}

func scanJustifications(rows pgx.Rows, withName bool) ([]justification.Justification, error) {
	var items []justification.Justification
	for rows.Next() {
		var j justification.Justification
		dest := []any{
			&j.ID, &j.MemberID, &j.CompanyID, &j.Date, &j.Reason, &j.Status,
			&j.AttachmentRef, &j.AdminNotes, &j.ReviewedBy, &j.ReviewedAt, &j.CreatedAt,
		}
		if withName {
			dest = append(dest, &j.MemberName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		items = append(items, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read justifications: %w", err)
	}
	return items, nil
}
