package evaluation

import (
	"context"
	"time"
)

// InconsistencyLogEntry is one detected absence persisted by the nightly
// sweep. The log is an operational audit trail; reports always recompute
// verdicts from punches.
type InconsistencyLogEntry struct {
	ID         string
	CompanyID  string
	MemberID   string
	Date       time.Time
	Status     Status
	DetectedAt time.Time
}

type InconsistencyLogRepository interface {
	// RecordAbsences inserts entries, skipping any (member_id, date) already
	// logged. Returns the number actually inserted.
	RecordAbsences(ctx context.Context, entries []InconsistencyLogEntry) (int, error)

	// ListForRange returns a company's logged entries with date in
	// [start, end], newest first.
	ListForRange(ctx context.Context, companyID string, start, end time.Time) ([]InconsistencyLogEntry, error)
}
