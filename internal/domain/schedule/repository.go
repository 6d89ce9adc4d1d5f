package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// GetByMember returns the schedule columns of a company member.
	GetByMember(ctx context.Context, memberID string, companyID string) (Config, error)

	// ListByCompany returns the schedule of every employee-role member.
	ListByCompany(ctx context.Context, companyID string) ([]Config, error)

	// Update persists the mutable schedule columns of a member.
	Update(ctx context.Context, cfg Config) error
}

type ShiftRepository interface {
	// Upsert inserts or replaces overrides keyed on (member_id, work_date).
	Upsert(ctx context.Context, shifts []ShiftOverride) error

	// ListForRange returns a member's overrides with work_date in [start, end].
	ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]ShiftOverride, error)

	// ListForCompanyRange returns every override of a company in [start, end].
	ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]ShiftOverride, error)
}
