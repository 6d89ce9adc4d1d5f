package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

func punchAt(kind punch.Kind, hhmm string) punch.Punch {
	ts, err := time.Parse("2006-01-02 15:04", "2026-03-10 "+hhmm)
	if err != nil {
		panic(err)
	}
	return punch.Punch{Kind: kind, Timestamp: ts}
}

func TestWorkedMinutes_FullDayWithPause(t *testing.T) {
	t.Parallel()
	punches := []punch.Punch{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindPause, "12:00"),
		punchAt(punch.KindReturn, "13:00"),
		punchAt(punch.KindExit, "17:00"),
	}

	got := WorkedMinutes(punches, nil)
	assert.InDelta(t, 480.0, got, 0.001)
}

func TestWorkedMinutes_OpenShiftClosedAtNow(t *testing.T) {
	t.Parallel()
	punches := []punch.Punch{punchAt(punch.KindEntry, "08:00")}
	now := punchAt(punch.KindExit, "10:30").Timestamp

	got := WorkedMinutes(punches, &now)
	assert.InDelta(t, 150.0, got, 0.001)
}

func TestWorkedMinutes_OpenShiftWithoutNowContributesNothing(t *testing.T) {
	t.Parallel()
	punches := []punch.Punch{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindPause, "12:00"),
		punchAt(punch.KindReturn, "13:00"),
	}

	got := WorkedMinutes(punches, nil)
	assert.InDelta(t, 240.0, got, 0.001)
}

func TestWorkedMinutes_MalformedSequences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		punches []punch.Punch
		want    float64
	}{
		{
			name:    "empty",
			punches: nil,
			want:    0,
		},
		{
			name: "closing punch with nothing open is ignored",
			punches: []punch.Punch{
				punchAt(punch.KindPause, "08:00"),
				punchAt(punch.KindEntry, "09:00"),
				punchAt(punch.KindExit, "10:00"),
			},
			want: 60,
		},
		{
			name: "double entry keeps the later open point",
			punches: []punch.Punch{
				punchAt(punch.KindEntry, "08:00"),
				punchAt(punch.KindEntry, "09:00"),
				punchAt(punch.KindExit, "10:00"),
			},
			want: 60,
		},
		{
			name: "exit after exit is ignored",
			punches: []punch.Punch{
				punchAt(punch.KindEntry, "08:00"),
				punchAt(punch.KindExit, "12:00"),
				punchAt(punch.KindExit, "13:00"),
			},
			want: 240,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkedMinutes(tt.punches, nil)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestWorkedMinutes_FractionalMinutesPreserved(t *testing.T) {
	t.Parallel()
	entry := punchAt(punch.KindEntry, "08:00")
	exit := entry
	exit.Kind = punch.KindExit
	exit.Timestamp = entry.Timestamp.Add(90*time.Minute + 30*time.Second)

	got := WorkedMinutes([]punch.Punch{entry, exit}, nil)
	assert.InDelta(t, 90.5, got, 0.001)
}

func TestFirstEntryTime(t *testing.T) {
	t.Parallel()
	punches := []punch.Punch{
		punchAt(punch.KindPause, "07:00"),
		punchAt(punch.KindEntry, "08:05"),
		punchAt(punch.KindEntry, "09:00"),
	}

	got := firstEntryTime(punches)
	assert.NotNil(t, got)
	assert.Equal(t, punches[1].Timestamp, *got)

	assert.Nil(t, firstEntryTime(nil))
	assert.Nil(t, firstEntryTime([]punch.Punch{punchAt(punch.KindReturn, "08:00")}))
}

func TestHasExit(t *testing.T) {
	t.Parallel()
	assert.False(t, hasExit([]punch.Punch{punchAt(punch.KindEntry, "08:00")}))
	assert.True(t, hasExit([]punch.Punch{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:00"),
	}))
}
