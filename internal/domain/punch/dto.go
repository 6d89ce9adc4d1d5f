package punch

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type RecordPunchRequest struct {
	Kind string `json:"kind"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind is required",
		})
	} else if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of entry, pause, return, exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
}

// TodayResponse is the employee dashboard payload: the day's timeline plus
// live figures computed from it.
type TodayResponse struct {
	Date             string          `json:"date"`
	Punches          []PunchResponse `json:"punches"`
	WorkedMinutes    int             `json:"worked_minutes"`
	ShiftOpen        bool            `json:"shift_open"`
	ShiftFinished    bool            `json:"shift_finished"`
	Occurrences      []string        `json:"occurrences"`
	ScheduleLabel    string          `json:"schedule_label"`
	TargetMinutes    int             `json:"target_minutes"`
	ToleranceMinutes int             `json:"tolerance_minutes"`
}
