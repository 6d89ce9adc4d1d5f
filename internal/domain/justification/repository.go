package justification

import (
	"context"
	"time"
)

type JustificationRepository interface {
	// Create inserts a PENDING justification. The unique index on
	// (member_id, date) maps duplicates to ErrAlreadyExists.
	Create(ctx context.Context, j Justification) (Justification, error)

	GetByID(ctx context.Context, id string, companyID string) (Justification, error)

	// ListForRange returns a member's justifications with date in [start, end].
	ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]Justification, error)

	// ListForCompanyRange returns every justification of a company in
	// [start, end], member name attached.
	ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]Justification, error)

	// ListByStatus returns a company's justifications filtered by status,
	// newest first, member name attached.
	ListByStatus(ctx context.Context, companyID string, status Status) ([]Justification, error)

	// UpdateStatus moves a PENDING justification to APPROVED or REJECTED.
	UpdateStatus(ctx context.Context, id string, companyID string, status Status, reviewedBy string, adminNotes *string) error
}
