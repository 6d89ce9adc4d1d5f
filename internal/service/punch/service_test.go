package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

func punchesOf(kinds ...punch.Kind) []punch.Punch {
	punches := make([]punch.Punch, 0, len(kinds))
	for _, k := range kinds {
		punches = append(punches, punch.Punch{Kind: k})
	}
	return punches
}

func TestCurrentState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		kinds []punch.Kind
		want  shiftState
	}{
		{"no punches", nil, stateIdle},
		{"after entry", []punch.Kind{punch.KindEntry}, stateWorking},
		{"after pause", []punch.Kind{punch.KindEntry, punch.KindPause}, statePaused},
		{"after return", []punch.Kind{punch.KindEntry, punch.KindPause, punch.KindReturn}, stateWorking},
		{"after exit", []punch.Kind{punch.KindEntry, punch.KindExit}, stateFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currentState(punchesOf(tt.kinds...)))
		})
	}
}

func TestValidateTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		state   shiftState
		kind    punch.Kind
		wantErr error
	}{
		{"entry from idle", stateIdle, punch.KindEntry, nil},
		{"entry while working", stateWorking, punch.KindEntry, punch.ErrAlreadyOpen},
		{"entry while paused", statePaused, punch.KindEntry, punch.ErrAlreadyOpen},
		{"entry after exit", stateFinished, punch.KindEntry, punch.ErrShiftAlreadyFinished},
		{"pause while working", stateWorking, punch.KindPause, nil},
		{"pause from idle", stateIdle, punch.KindPause, punch.ErrNotClockedIn},
		{"pause while paused", statePaused, punch.KindPause, punch.ErrNotClockedIn},
		{"return while paused", statePaused, punch.KindReturn, nil},
		{"return while working", stateWorking, punch.KindReturn, punch.ErrNotPaused},
		{"exit while working", stateWorking, punch.KindExit, nil},
		{"exit while paused", statePaused, punch.KindExit, nil},
		{"exit from idle", stateIdle, punch.KindExit, punch.ErrNotClockedIn},
		{"exit after exit", stateFinished, punch.KindExit, punch.ErrShiftAlreadyFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.state, tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
