package punch

import "context"

// PunchService defines business logic for clock events
type PunchService interface {
	// Record registers a clock event for a member, enforcing the
	// one-shift-per-day rule and punch sequence sanity.
	Record(ctx context.Context, memberID string, companyID string, req RecordPunchRequest) (TodayResponse, error)

	// Today returns a member's current-day timeline and live figures.
	Today(ctx context.Context, memberID string, companyID string) (TodayResponse, error)
}
