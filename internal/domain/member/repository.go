package member

import "context"

type MemberRepository interface {
	// GetByID returns a member scoped to a company.
	GetByID(ctx context.Context, id string, companyID string) (Member, error)

	// ListEmployees returns every employee-role member of a company.
	ListEmployees(ctx context.Context, companyID string) ([]Member, error)
}
