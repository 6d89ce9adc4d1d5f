package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

func mustTimeOfDay(t *testing.T, s string) *schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &tod
}

func fixedConfig(t *testing.T) schedule.Config {
	t.Helper()
	return schedule.Config{
		Type:                 schedule.ScheduleTypeFixed,
		WorkDays:             []string{"mon", "tue", "wed", "thu", "fri"},
		FixedStart:           mustTimeOfDay(t, "08:00"),
		FixedEnd:             mustTimeOfDay(t, "17:00"),
		ToleranceMinutes:     10,
		FallbackDailyMinutes: 480,
	}
}

// 2026-03-10 is a Tuesday, 2026-03-08 a Sunday.
var (
	tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func TestResolveTarget_FixedWorkDay(t *testing.T) {
	t.Parallel()
	got := ResolveTarget(tuesday, fixedConfig(t), nil)

	assert.True(t, got.IsWorkDay)
	require.NotNil(t, got.Start)
	assert.Equal(t, "08:00", got.Start.String())
	assert.Equal(t, 540, got.Minutes)
	assert.Equal(t, "08:00 - 17:00", got.Window())
}

func TestResolveTarget_OffDay(t *testing.T) {
	t.Parallel()
	got := ResolveTarget(sunday, fixedConfig(t), nil)

	assert.False(t, got.IsWorkDay)
	assert.Zero(t, got.Minutes)
}

func TestResolveTarget_FlexibleUsesFallbackMinutes(t *testing.T) {
	t.Parallel()
	cfg := fixedConfig(t)
	cfg.Type = schedule.ScheduleTypeFlexible
	cfg.FixedStart = nil
	cfg.FixedEnd = nil
	cfg.FallbackDailyMinutes = 420

	got := ResolveTarget(tuesday, cfg, nil)

	assert.True(t, got.IsWorkDay)
	assert.Nil(t, got.Start)
	assert.Equal(t, 420, got.Minutes)
	assert.Equal(t, "Flexível", got.Window())
}

func TestResolveTarget_FixedMissingWindowDegradesToFallback(t *testing.T) {
	t.Parallel()
	cfg := fixedConfig(t)
	cfg.FixedEnd = nil

	got := ResolveTarget(tuesday, cfg, nil)

	assert.True(t, got.IsWorkDay)
	assert.Nil(t, got.Start)
	assert.Equal(t, 480, got.Minutes)
}

func TestResolveTarget_OverrideWinsOverWorkDay(t *testing.T) {
	t.Parallel()
	override := &schedule.ShiftOverride{
		Date:            tuesday,
		StartTime:       schedule.TimeOfDay{Hour: 14, Minute: 0},
		DurationMinutes: 240,
	}

	got := ResolveTarget(tuesday, fixedConfig(t), override)

	assert.True(t, got.IsWorkDay)
	require.NotNil(t, got.Start)
	assert.Equal(t, "14:00", got.Start.String())
	assert.Equal(t, 240, got.Minutes)
	assert.Equal(t, "14:00 - 18:00", got.Window())
}

func TestResolveTarget_OverrideTurnsOffDayIntoWorkDay(t *testing.T) {
	t.Parallel()
	override := &schedule.ShiftOverride{
		Date:            sunday,
		StartTime:       schedule.TimeOfDay{Hour: 9, Minute: 30},
		DurationMinutes: 180,
	}

	got := ResolveTarget(sunday, fixedConfig(t), override)

	assert.True(t, got.IsWorkDay)
	assert.Equal(t, 180, got.Minutes)
	assert.Equal(t, "09:30 - 12:30", got.Window())
}

func TestTargetWindow_WrapsPastMidnight(t *testing.T) {
	t.Parallel()
	start := schedule.TimeOfDay{Hour: 22, Minute: 0}
	target := Target{IsWorkDay: true, Start: &start, Minutes: 360}

	assert.Equal(t, "22:00 - 04:00", target.Window())
}
