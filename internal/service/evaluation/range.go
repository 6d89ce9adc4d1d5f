package evaluation

import (
	"fmt"
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// Mode selects what EvaluateRange returns for a window of days.
type Mode int

const (
	// ModeCalendar returns every day in the window, ascending, future days
	// included.
	ModeCalendar Mode = iota
	// ModeInconsistency returns only realized issues, newest first, and never
	// looks past the evaluation clock.
	ModeInconsistency
)

// RangeInput carries one member's data for a date window. Punches,
// overrides and justifications may span any subset of the window; they are
// grouped per day internally.
type RangeInput struct {
	Start          time.Time
	End            time.Time
	AsOf           time.Time
	Config         schedule.Config
	Overrides      []schedule.ShiftOverride
	Punches        []punch.Punch
	Justifications []justification.Justification
}

// EvaluateRange runs the day evaluator over [Start, End] and shapes the
// result per mode. It fails only on data-integrity violations: two
// justifications for the same member and day.
func EvaluateRange(in RangeInput, mode Mode) ([]evaluation.DayVerdict, error) {
	start := startOfDay(in.Start)
	end := startOfDay(in.End)
	if end.Before(start) {
		return nil, nil
	}

	overrideByDay := make(map[string]*schedule.ShiftOverride, len(in.Overrides))
	for i := range in.Overrides {
		overrideByDay[dateKey(in.Overrides[i].Date)] = &in.Overrides[i]
	}

	justificationByDay := make(map[string]*justification.Justification, len(in.Justifications))
	for i := range in.Justifications {
		key := dateKey(in.Justifications[i].Date)
		if _, ok := justificationByDay[key]; ok {
			return nil, fmt.Errorf("%w: member %s on %s",
				evaluation.ErrDuplicateJustification, in.Config.MemberID, key)
		}
		justificationByDay[key] = &in.Justifications[i]
	}

	punchesByDay := make(map[string][]punch.Punch)
	for _, p := range in.Punches {
		key := dateKey(p.Timestamp)
		punchesByDay[key] = append(punchesByDay[key], p)
	}

	today := startOfDay(in.AsOf)

	var verdicts []evaluation.DayVerdict
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if mode == ModeInconsistency && day.After(today) {
			break
		}
		key := dateKey(day)
		verdict := EvaluateDay(DayInput{
			Date:          day,
			AsOf:          in.AsOf,
			Config:        in.Config,
			Override:      overrideByDay[key],
			Punches:       punchesByDay[key],
			Justification: justificationByDay[key],
		})
		if mode == ModeInconsistency && !verdict.Status.IsIssue() {
			continue
		}
		verdicts = append(verdicts, verdict)
	}

	if mode == ModeInconsistency {
		sort.Slice(verdicts, func(i, j int) bool {
			return verdicts[i].Date.After(verdicts[j].Date)
		})
	}
	return verdicts, nil
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
