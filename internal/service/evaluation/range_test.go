package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// Week of Monday 2026-03-09 through Sunday 2026-03-15, evaluated
// mid-morning on Tuesday the 10th.
func weekInput(t *testing.T) RangeInput {
	t.Helper()
	cfg := fixedConfig(t)
	cfg.MemberID = "m-1"
	cfg.JoinedOn = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return RangeInput{
		Start:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		AsOf:   asOf,
		Config: cfg,
	}
}

func TestEvaluateRange_CalendarCoversEveryDayAscending(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	monday := in.Start
	in.Punches = []punch.Punch{
		dayPunch(punch.KindEntry, monday, "08:00"),
		dayPunch(punch.KindExit, monday, "17:00"),
		dayPunch(punch.KindEntry, tuesday, "08:05"),
	}

	got, err := EvaluateRange(in, ModeCalendar)

	require.NoError(t, err)
	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Date.After(got[i-1].Date))
	}
	assert.Equal(t, evaluation.StatusOnTrack, got[0].Status)
	assert.Equal(t, evaluation.StatusInProgress, got[1].Status)
	assert.Equal(t, evaluation.StatusFuture, got[2].Status)
	assert.Equal(t, evaluation.StatusFuture, got[4].Status) // Friday the 13th
	assert.Equal(t, evaluation.StatusOff, got[5].Status)    // Saturday
	assert.Equal(t, evaluation.StatusOff, got[6].Status)
}

func TestEvaluateRange_InconsistencyOnlyRealizedIssuesDescending(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	in.Start = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	in.End = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	in.Punches = []punch.Punch{
		// Monday the 2nd: on track.
		dayPunch(punch.KindEntry, in.Start, "08:00"),
		dayPunch(punch.KindExit, in.Start, "17:00"),
		// Wednesday the 4th: late.
		dayPunch(punch.KindEntry, wednesday, "08:30"),
		dayPunch(punch.KindExit, wednesday, "17:30"),
		// Thursday the 5th: incomplete.
		dayPunch(punch.KindEntry, thursday, "08:00"),
		dayPunch(punch.KindExit, thursday, "12:00"),
	}
	// Tuesday the 3rd, Friday the 6th and Monday the 9th stay absent.

	got, err := EvaluateRange(in, ModeInconsistency)

	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Date.Before(got[i-1].Date))
	}
	assert.Equal(t, evaluation.StatusAbsent, got[0].Status) // Mon 9th
	assert.Equal(t, evaluation.StatusAbsent, got[1].Status) // Fri 6th
	assert.Equal(t, evaluation.StatusIncomplete, got[2].Status)
	assert.Equal(t, evaluation.StatusLate, got[3].Status)
	assert.Equal(t, evaluation.StatusAbsent, got[4].Status) // Tue 3rd
}

func TestEvaluateRange_InconsistencySkipsTodayOpenShift(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	in.Punches = []punch.Punch{dayPunch(punch.KindEntry, tuesday, "08:05")}
	in.Justifications = []justification.Justification{
		{Date: in.Start, Status: justification.StatusApproved},
	}

	got, err := EvaluateRange(in, ModeInconsistency)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEvaluateRange_InconsistencyIncludesPendingReview(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	in.Justifications = []justification.Justification{
		{Date: in.Start, Status: justification.StatusPending},
	}

	got, err := EvaluateRange(in, ModeInconsistency)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, evaluation.StatusPendingReview, got[0].Status)
}

func TestEvaluateRange_OverrideAppliedToItsDay(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	in.Overrides = []schedule.ShiftOverride{
		{
			Date:            saturday,
			StartTime:       schedule.TimeOfDay{Hour: 9, Minute: 0},
			DurationMinutes: 240,
		},
	}

	got, err := EvaluateRange(in, ModeCalendar)

	require.NoError(t, err)
	require.Len(t, got, 7)
	sat := got[5]
	assert.Equal(t, evaluation.StatusFuture, sat.Status)
	assert.Equal(t, "09:00 - 13:00", sat.TargetWindow)
}

func TestEvaluateRange_DuplicateJustificationIsAnError(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	in.Justifications = []justification.Justification{
		{Date: in.Start, Status: justification.StatusPending},
		{Date: in.Start, Status: justification.StatusApproved},
	}

	_, err := EvaluateRange(in, ModeCalendar)

	assert.ErrorIs(t, err, evaluation.ErrDuplicateJustification)
}

func TestEvaluateRange_EmptyWhenEndBeforeStart(t *testing.T) {
	t.Parallel()
	in := weekInput(t)
	in.End = in.Start.AddDate(0, 0, -1)

	got, err := EvaluateRange(in, ModeCalendar)

	require.NoError(t, err)
	assert.Empty(t, got)
}
