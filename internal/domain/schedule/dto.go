package schedule

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type UpdateScheduleRequest struct {
	MemberID             string   `json:"-"`
	Type                 string   `json:"schedule_type"`
	WorkDays             []string `json:"work_days"`
	FixedStartTime       *string  `json:"fixed_start_time"`
	FixedEndTime         *string  `json:"fixed_end_time"`
	ToleranceMinutes     int      `json:"tolerance_minutes"`
	FallbackDailyMinutes int      `json:"work_hours_minutes"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_type",
			Message: "schedule_type must be fixed or flexible",
		})
	}

	for _, day := range r.WorkDays {
		if !validator.IsValidWeekdayCode(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work_days must contain weekday codes sun..sat",
			})
			break
		}
	}

	if r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be zero or positive",
		})
	}

	if r.FallbackDailyMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours_minutes",
			Message: "work_hours_minutes must be positive",
		})
	}

	if r.FixedStartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.FixedStartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fixed_start_time",
				Message: "fixed_start_time must be HH:MM",
			})
		}
	}
	if r.FixedEndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.FixedEndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fixed_end_time",
				Message: "fixed_end_time must be HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	MemberID             string   `json:"member_id"`
	Type                 string   `json:"schedule_type"`
	WorkDays             []string `json:"work_days"`
	FixedStartTime       *string  `json:"fixed_start_time"`
	FixedEndTime         *string  `json:"fixed_end_time"`
	ToleranceMinutes     int      `json:"tolerance_minutes"`
	FallbackDailyMinutes int      `json:"work_hours_minutes"`
	JoinedOn             string   `json:"joined_on"`
}

// ========================================
// SHIFT OVERRIDE DTOs
// ========================================

// ShiftScope selects how many dates an upsert expands to around the
// reference date: the date itself, its Sun..Sat week, or its calendar month.
type ShiftScope string

const (
	ShiftScopeDay   ShiftScope = "day"
	ShiftScopeWeek  ShiftScope = "week"
	ShiftScopeMonth ShiftScope = "month"
)

var shiftScopeValues = []string{
	string(ShiftScopeDay),
	string(ShiftScopeWeek),
	string(ShiftScopeMonth),
}

type UpsertShiftRequest struct {
	MemberID        string `json:"-"`
	ReferenceDate   string `json:"reference_date"`
	Scope           string `json:"scope"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_date",
			Message: "reference_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Scope, shiftScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be day, week or month",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if r.DurationMinutes <= 0 || r.DurationMinutes > 24*60 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be between 1 and 1440",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	MemberID        string `json:"member_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type UpsertShiftResponse struct {
	DaysApplied int             `json:"days_applied"`
	Shifts      []ShiftResponse `json:"shifts"`
}
