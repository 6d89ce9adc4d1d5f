package evaluation

import (
	"math"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// Display labels, as the original product shows them.
const (
	labelOff        = "Folga"
	labelAbsent     = "Falta"
	labelLate       = "Atrasado"
	labelIncomplete = "Incompleto"
	labelOnTrack    = "Concluído"
	labelJustified  = "Abonado"
	labelPending    = "Em Análise"
	labelInProgress = "Em andamento"
)

// DayInput is everything EvaluateDay needs for one calendar day. AsOf is the
// evaluation clock: "today" and in-progress elapsed time derive from it, so
// evaluation is pure and reproducible under a fixed clock.
type DayInput struct {
	Date          time.Time
	AsOf          time.Time
	Config        schedule.Config
	Override      *schedule.ShiftOverride
	Punches       []punch.Punch
	Justification *justification.Justification
}

// EvaluateDay classifies one day into exactly one attendance status and
// fills the figures meaningful to that status. It never fails: malformed
// punch data degrades per WorkedMinutes, missing schedule fields degrade
// per ResolveTarget.
func EvaluateDay(in DayInput) evaluation.DayVerdict {
	day := startOfDay(in.Date)
	today := startOfDay(in.AsOf)
	isToday := day.Equal(today)
	isPast := day.Before(today)

	verdict := evaluation.DayVerdict{
		Date:          day,
		Justification: in.Justification,
	}

	// Days before the member joined are never evaluated.
	if day.Before(startOfDay(in.Config.JoinedOn)) {
		verdict.Status = evaluation.StatusNotJoined
		verdict.Justification = nil
		return verdict
	}

	target := ResolveTarget(day, in.Config, in.Override)
	if !target.IsWorkDay {
		verdict.Status = evaluation.StatusOff
		verdict.Label = labelOff
		return verdict
	}
	verdict.TargetMinutes = target.Minutes

	// An approved justification fully excuses the day.
	if in.Justification != nil && in.Justification.Status == justification.StatusApproved {
		verdict.Status = evaluation.StatusJustified
		verdict.Label = labelJustified
		return verdict
	}

	// Future work days carry the resolved window for forward visibility and
	// are never judged.
	if !isPast && !isToday {
		verdict.Status = evaluation.StatusFuture
		verdict.TargetWindow = target.Window()
		verdict.Label = verdict.TargetWindow
		return verdict
	}

	var nowIfOpen *time.Time
	if isToday {
		asOf := in.AsOf
		nowIfOpen = &asOf
	}
	worked := WorkedMinutes(in.Punches, nowIfOpen)
	verdict.WorkedMinutes = int(math.Floor(worked))

	tolerance := in.Config.ToleranceMinutes

	// Lateness is determined at the first entry punch against the target
	// start, when one exists.
	isLate := false
	if first := firstEntryTime(in.Punches); first != nil && target.Start != nil {
		lateMinutes := int(math.Floor(first.Sub(target.Start.On(*first)).Minutes()))
		if lateMinutes > tolerance {
			isLate = true
			verdict.LateMinutes = lateMinutes
		}
	}

	// Deficit compares precise worked minutes against the target before any
	// flooring.
	isIncomplete := worked < float64(target.Minutes-tolerance)
	if deficit := float64(target.Minutes) - worked; deficit > 0 {
		verdict.DeficitMinutes = int(math.Floor(deficit))
	}

	// A pending justification freezes the verdict for review but keeps the
	// computed figures visible.
	if in.Justification != nil && in.Justification.Status == justification.StatusPending {
		verdict.Status = evaluation.StatusPendingReview
		verdict.Label = labelPending
		return verdict
	}
	// A rejected justification stays attached for display and changes nothing.

	switch {
	case len(in.Punches) == 0 && isPast:
		verdict.Status = evaluation.StatusAbsent
		verdict.Label = labelAbsent
		verdict.DeficitMinutes = target.Minutes

	case isToday && isIncomplete && !hasExit(in.Punches):
		// The shift is still open: a deficit is not an issue yet, but
		// lateness is already fixed at the first punch.
		if isLate {
			verdict.Status = evaluation.StatusLate
			verdict.Label = labelLate
		} else {
			verdict.Status = evaluation.StatusInProgress
			verdict.Label = labelInProgress
		}

	case isIncomplete:
		verdict.Status = evaluation.StatusIncomplete
		verdict.Label = labelIncomplete

	case isLate:
		verdict.Status = evaluation.StatusLate
		verdict.Label = labelLate

	default:
		verdict.Status = evaluation.StatusOnTrack
		verdict.Label = labelOnTrack
	}

	return verdict
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
