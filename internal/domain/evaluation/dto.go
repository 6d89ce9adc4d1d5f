package evaluation

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// CALENDAR (single member)
// ========================================

type CalendarRequest struct {
	Month string `json:"month"` // "2006-01"
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalendarDay struct {
	Date           string                               `json:"date"`
	Status         string                               `json:"status"`
	Label          string                               `json:"label"`
	WorkedMinutes  int                                  `json:"worked_minutes"`
	TargetMinutes  int                                  `json:"target_minutes"`
	LateMinutes    int                                  `json:"late_minutes,omitempty"`
	DeficitMinutes int                                  `json:"deficit_minutes,omitempty"`
	TargetWindow   string                               `json:"target_window,omitempty"`
	Justification  *justification.JustificationResponse `json:"justification,omitempty"`
}

type CalendarResponse struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// ========================================
// INCONSISTENCY REPORT (company-wide)
// ========================================

type InconsistencyRequest struct {
	WindowDays int `json:"days"`
}

func (r *InconsistencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WindowDays < 1 || r.WindowDays > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be between 1 and 366",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InconsistencyItem struct {
	Date           string                               `json:"date"`
	MemberID       string                               `json:"member_id"`
	MemberName     string                               `json:"member_name"`
	Status         string                               `json:"status"`
	Details        string                               `json:"details"`
	LateMinutes    int                                  `json:"late_minutes,omitempty"`
	DeficitMinutes int                                  `json:"deficit_minutes,omitempty"`
	Justification  *justification.JustificationResponse `json:"justification,omitempty"`
}

type InconsistencyReport struct {
	WindowStart string              `json:"window_start"`
	WindowEnd   string              `json:"window_end"`
	GeneratedAt string              `json:"generated_at"`
	Items       []InconsistencyItem `json:"items"`
}

// ========================================
// MEMBER SUMMARY (admin detail view)
// ========================================

type SummaryRequest struct {
	MemberID  string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id must be a UUID",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if okStart && okEnd && end.Sub(start) > 366*24*time.Hour {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "range must not exceed 366 days",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryTotals struct {
	WorkedMinutes  int `json:"worked_minutes"`
	TargetMinutes  int `json:"target_minutes"`
	LateDays       int `json:"late_days"`
	AbsentDays     int `json:"absent_days"`
	IncompleteDays int `json:"incomplete_days"`
	JustifiedDays  int `json:"justified_days"`
}

type MemberSummary struct {
	MemberID   string        `json:"member_id"`
	MemberName string        `json:"member_name"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Totals     SummaryTotals `json:"totals"`
	Days       []CalendarDay `json:"days"`
}
