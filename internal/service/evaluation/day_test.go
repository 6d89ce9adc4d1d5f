package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// Fixed evaluation clock: Tuesday 2026-03-10 at 10:30.
var asOf = time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

func dayInput(t *testing.T, date time.Time) DayInput {
	t.Helper()
	cfg := fixedConfig(t)
	cfg.JoinedOn = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return DayInput{Date: date, AsOf: asOf, Config: cfg}
}

func dayPunch(kind punch.Kind, date time.Time, hhmm string) punch.Punch {
	tod, err := schedule.ParseTimeOfDay(hhmm)
	if err != nil {
		panic(err)
	}
	return punch.Punch{Kind: kind, Timestamp: tod.On(date)}
}

func TestEvaluateDay_BeforeJoinDate(t *testing.T) {
	t.Parallel()
	in := dayInput(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	in.Justification = &justification.Justification{Status: justification.StatusApproved}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusNotJoined, got.Status)
	assert.Nil(t, got.Justification)
}

func TestEvaluateDay_OffDayBeatsJustification(t *testing.T) {
	t.Parallel()
	in := dayInput(t, sunday)
	in.Justification = &justification.Justification{Status: justification.StatusApproved}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOff, got.Status)
	assert.Equal(t, "Folga", got.Label)
}

func TestEvaluateDay_ApprovedJustificationExcusesWorkDay(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Justification = &justification.Justification{Status: justification.StatusApproved}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusJustified, got.Status)
	assert.Equal(t, "Abonado", got.Label)
	assert.Zero(t, got.WorkedMinutes)
	assert.Equal(t, 540, got.TargetMinutes)
}

func TestEvaluateDay_FutureWorkDayCarriesWindow(t *testing.T) {
	t.Parallel()
	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	got := EvaluateDay(dayInput(t, wednesday))

	assert.Equal(t, evaluation.StatusFuture, got.Status)
	assert.Equal(t, "08:00 - 17:00", got.TargetWindow)
	assert.Zero(t, got.WorkedMinutes)
}

func TestEvaluateDay_PastAbsence(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	got := EvaluateDay(dayInput(t, monday))

	assert.Equal(t, evaluation.StatusAbsent, got.Status)
	assert.Equal(t, "Falta", got.Label)
	assert.Equal(t, 540, got.DeficitMinutes)
	assert.Zero(t, got.WorkedMinutes)
}

func TestEvaluateDay_PastCompleteOnTime(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "08:05"),
		dayPunch(punch.KindExit, monday, "17:05"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
	assert.Equal(t, "Concluído", got.Label)
	assert.Equal(t, 540, got.WorkedMinutes)
	assert.Zero(t, got.LateMinutes)
	assert.Zero(t, got.DeficitMinutes)
}

func TestEvaluateDay_LateWithinToleranceIsNotLate(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "08:10"),
		dayPunch(punch.KindExit, monday, "17:10"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
	assert.Zero(t, got.LateMinutes)
}

func TestEvaluateDay_PastLate(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "08:25"),
		dayPunch(punch.KindExit, monday, "17:25"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusLate, got.Status)
	assert.Equal(t, "Atrasado", got.Label)
	assert.Equal(t, 25, got.LateMinutes)
	assert.Equal(t, 540, got.WorkedMinutes)
}

func TestEvaluateDay_IncompleteBeatsLate(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "09:00"),
		dayPunch(punch.KindExit, monday, "15:00"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusIncomplete, got.Status)
	assert.Equal(t, "Incompleto", got.Label)
	assert.Equal(t, 60, got.LateMinutes)
	assert.Equal(t, 360, got.WorkedMinutes)
	assert.Equal(t, 180, got.DeficitMinutes)
}

func TestEvaluateDay_ShortWithinToleranceIsComplete(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "08:00"),
		dayPunch(punch.KindExit, monday, "16:55"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
	assert.Equal(t, 535, got.WorkedMinutes)
	assert.Equal(t, 5, got.DeficitMinutes)
}

func TestEvaluateDay_TodayOpenShiftInProgress(t *testing.T) {
	t.Parallel()
	in := dayInput(t, tuesday)
	in.Punches = []punch.Punch{dayPunch(punch.KindEntry, tuesday, "08:05")}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusInProgress, got.Status)
	assert.Equal(t, "Em andamento", got.Label)
	assert.Equal(t, 145, got.WorkedMinutes)
}

func TestEvaluateDay_TodayOpenShiftLateArrival(t *testing.T) {
	t.Parallel()
	in := dayInput(t, tuesday)
	in.Punches = []punch.Punch{dayPunch(punch.KindEntry, tuesday, "09:00")}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusLate, got.Status)
	assert.Equal(t, 60, got.LateMinutes)
}

func TestEvaluateDay_TodayClosedShortIsIncomplete(t *testing.T) {
	t.Parallel()
	in := dayInput(t, tuesday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, tuesday, "08:00"),
		dayPunch(punch.KindExit, tuesday, "10:00"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusIncomplete, got.Status)
	assert.Equal(t, 120, got.WorkedMinutes)
}

func TestEvaluateDay_TodayNoPunchesIsNotAbsent(t *testing.T) {
	t.Parallel()
	got := EvaluateDay(dayInput(t, tuesday))

	assert.Equal(t, evaluation.StatusInProgress, got.Status)
	assert.Zero(t, got.WorkedMinutes)
}

func TestEvaluateDay_PendingJustificationKeepsFigures(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "09:00"),
		dayPunch(punch.KindExit, monday, "15:00"),
	}
	in.Justification = &justification.Justification{Status: justification.StatusPending}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusPendingReview, got.Status)
	assert.Equal(t, "Em Análise", got.Label)
	assert.Equal(t, 360, got.WorkedMinutes)
	assert.Equal(t, 180, got.DeficitMinutes)
	assert.NotNil(t, got.Justification)
}

func TestEvaluateDay_RejectedJustificationFallsThrough(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Justification = &justification.Justification{Status: justification.StatusRejected}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusAbsent, got.Status)
	assert.NotNil(t, got.Justification)
}

func TestEvaluateDay_OverrideShiftEvaluatedAgainstOverride(t *testing.T) {
	t.Parallel()
	in := dayInput(t, sunday)
	in.AsOf = time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	in.Override = &schedule.ShiftOverride{
		Date:            sunday,
		StartTime:       schedule.TimeOfDay{Hour: 9, Minute: 0},
		DurationMinutes: 240,
	}
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, sunday, "09:05"),
		dayPunch(punch.KindExit, sunday, "13:05"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
	assert.Equal(t, 240, got.WorkedMinutes)
	assert.Equal(t, 240, got.TargetMinutes)
}

func TestEvaluateDay_FlexibleScheduleNeverLate(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	in.Config.Type = schedule.ScheduleTypeFlexible
	in.Config.FixedStart = nil
	in.Config.FixedEnd = nil
	in.Config.FallbackDailyMinutes = 480
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "11:00"),
		dayPunch(punch.KindExit, monday, "19:00"),
	}

	got := EvaluateDay(in)

	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
	assert.Zero(t, got.LateMinutes)
	assert.Equal(t, 480, got.WorkedMinutes)
}

func TestEvaluateDay_WorkedMinutesFlooredForDisplay(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	in := dayInput(t, monday)
	entry := dayPunch(punch.KindEntry, monday, "08:00")
	exit := dayPunch(punch.KindExit, monday, "17:00")
	exit.Timestamp = exit.Timestamp.Add(45 * time.Second)
	in.Punches = []punch.Punch{entry, exit}

	got := EvaluateDay(in)

	assert.Equal(t, 540, got.WorkedMinutes)
	assert.Equal(t, evaluation.StatusOnTrack, got.Status)
}
