package evaluation

import "context"

// ReportService drives the day evaluator over date ranges and members
type ReportService interface {
	// MyCalendar returns a member's month grid, future days included,
	// ascending.
	MyCalendar(ctx context.Context, memberID string, companyID string, req CalendarRequest) (CalendarResponse, error)

	// Inconsistencies returns the company-wide report over the trailing
	// window: realized issues only, newest first (admin).
	Inconsistencies(ctx context.Context, companyID string, req InconsistencyRequest) (InconsistencyReport, error)

	// MemberSummary returns one member's verdicts and aggregate totals over
	// [start, end] (admin).
	MemberSummary(ctx context.Context, companyID string, req SummaryRequest) (MemberSummary, error)
}
