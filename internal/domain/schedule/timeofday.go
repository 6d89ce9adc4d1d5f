package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with no date attached, stored as "HH:MM"
// in Postgres time columns.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "15:04" or "15:04:05" strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// FromTime extracts the wall-clock part of a timestamp.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// MinuteOfDay returns minutes elapsed since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// On anchors the wall-clock time to a date in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
