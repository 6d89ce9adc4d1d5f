package evaluation

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
)

// Status is the single attendance verdict assigned to an evaluated day.
// Exactly one applies per day.
type Status string

const (
	StatusNotJoined     Status = "not_joined"  // before the member's join date
	StatusOff           Status = "off"         // not a work day
	StatusFuture        Status = "future"      // work day still ahead
	StatusAbsent        Status = "absent"      // past work day with no punches
	StatusLate          Status = "late"        // arrived past tolerance
	StatusIncomplete    Status = "incomplete"  // closed short of target
	StatusOnTrack       Status = "on_track"    // completed without issue
	StatusJustified     Status = "justified"   // approved justification excuses the day
	StatusPendingReview Status = "pending"     // justification awaiting review
	StatusInProgress    Status = "in_progress" // today, shift open, no issue yet
)

// IsIssue reports whether the status is a realized problem worth surfacing
// on the company-wide inconsistency report.
func (s Status) IsIssue() bool {
	switch s {
	case StatusAbsent, StatusLate, StatusIncomplete, StatusPendingReview:
		return true
	}
	return false
}

// DayVerdict is the derived attendance result for one calendar day. Never
// persisted; recomputed on every read. Figures are only populated for the
// statuses they are meaningful to: WorkedMinutes/TargetMinutes for evaluated
// days, LateMinutes only when arrival exceeded the tolerance, DeficitMinutes
// when the day fell short, TargetWindow for future days of a fixed schedule.
type DayVerdict struct {
	Date           time.Time
	Status         Status
	Label          string
	WorkedMinutes  int
	TargetMinutes  int
	LateMinutes    int
	DeficitMinutes int
	TargetWindow   string
	Justification  *justification.Justification
}
