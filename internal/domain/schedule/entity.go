package schedule

import "time"

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "fixed"
	ScheduleTypeFlexible ScheduleType = "flexible"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeFlexible),
}

// Weekday codes, Sunday first, as stored in company_members.work_days.
var WeekdayCodes = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayCode returns the weekday code for a date.
func DayCode(t time.Time) string {
	return WeekdayCodes[int(t.Weekday())]
}

// Config is a member's base weekly work pattern. FixedStart/FixedEnd are
// minute-of-day clock times and only meaningful for the fixed type; the
// flexible type works against FallbackDailyMinutes.
type Config struct {
	MemberID             string
	CompanyID            string
	Type                 ScheduleType
	WorkDays             []string
	FixedStart           *TimeOfDay
	FixedEnd             *TimeOfDay
	ToleranceMinutes     int
	FallbackDailyMinutes int
	JoinedOn             time.Time
	UpdatedAt            time.Time
}

// WorksOn reports whether code is one of the configured work days.
func (c Config) WorksOn(code string) bool {
	for _, d := range c.WorkDays {
		if d == code {
			return true
		}
	}
	return false
}

// ShiftOverride replaces the base schedule for one date. Its presence always
// means "work day", even over a weekday the base schedule marks off.
type ShiftOverride struct {
	ID              string
	MemberID        string
	CompanyID       string
	Date            time.Time
	StartTime       TimeOfDay
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
