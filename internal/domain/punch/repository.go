package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	// Create inserts a punch and returns it with ID and timestamps filled.
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListForDay returns a member's punches with timestamps inside the local
	// day starting at dayStart, ordered ascending.
	ListForDay(ctx context.Context, memberID string, dayStart time.Time, companyID string) ([]Punch, error)

	// ListForRange returns a member's punches in [start, end), ordered ascending.
	ListForRange(ctx context.Context, memberID string, start, end time.Time, companyID string) ([]Punch, error)

	// ListForCompanyRange returns every employee punch of a company in
	// [start, end), ordered by member then timestamp ascending.
	ListForCompanyRange(ctx context.Context, companyID string, start, end time.Time) ([]Punch, error)
}
