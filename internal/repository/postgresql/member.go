package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/member"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type memberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, company_id, full_name, email, role, joined_at, created_at, updated_at`

// GetByID implements member.MemberRepository.
func (r *memberRepository) GetByID(ctx context.Context, id string, companyID string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM company_members
		WHERE id = $1 AND company_id = $2
	`, memberColumns)

	var m member.Member
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&m.ID, &m.CompanyID, &m.FullName, &m.Email, &m.Role,
		&m.JoinedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// ListEmployees implements member.MemberRepository.
func (r *memberRepository) ListEmployees(ctx context.Context, companyID string) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM company_members
		WHERE company_id = $1 AND role = 'employee'
		ORDER BY full_name ASC
	`, memberColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		var m member.Member
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.FullName, &m.Email, &m.Role,
			&m.JoinedAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members: %w", err)
	}
	return members, nil
}
