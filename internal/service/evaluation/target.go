package evaluation

import (
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// Target is a day's expected attendance: whether it is a work day at all,
// the expected start (absent for flexible schedules) and the expected
// worked minutes.
type Target struct {
	IsWorkDay bool
	Start     *schedule.TimeOfDay
	Minutes   int
}

// ResolveTarget determines the day's target from the base schedule and an
// optional shift override. An override always wins and always means work
// day, even over a weekday the base schedule marks off. Without one, the
// base schedule decides: off days have no target, fixed schedules use the
// gross start-to-end window, flexible schedules use the fallback daily
// minutes. A fixed schedule missing its window degrades to flexible for
// that day.
func ResolveTarget(date time.Time, cfg schedule.Config, override *schedule.ShiftOverride) Target {
	if override != nil {
		start := override.StartTime
		return Target{
			IsWorkDay: true,
			Start:     &start,
			Minutes:   override.DurationMinutes,
		}
	}

	if !cfg.WorksOn(schedule.DayCode(date)) {
		return Target{IsWorkDay: false}
	}

	if cfg.Type == schedule.ScheduleTypeFixed && cfg.FixedStart != nil && cfg.FixedEnd != nil {
		start := *cfg.FixedStart
		return Target{
			IsWorkDay: true,
			Start:     &start,
			Minutes:   cfg.FixedEnd.MinuteOfDay() - cfg.FixedStart.MinuteOfDay(),
		}
	}

	return Target{
		IsWorkDay: true,
		Minutes:   cfg.FallbackDailyMinutes,
	}
}

// Window renders the target as a display window, "08:00 - 17:00" for timed
// targets or the flexible label otherwise.
func (t Target) Window() string {
	if t.Start == nil {
		return "Flexível"
	}
	endMinute := t.Start.MinuteOfDay() + t.Minutes
	end := schedule.TimeOfDay{Hour: (endMinute / 60) % 24, Minute: endMinute % 60}
	return fmt.Sprintf("%s - %s", t.Start.String(), end.String())
}
