package punch

import "errors"

// Punch domain errors
var (
	ErrShiftAlreadyFinished = errors.New("shift already finished today, only one shift per day is allowed")
	ErrNotClockedIn         = errors.New("no open shift to pause or finish")
	ErrAlreadyOpen          = errors.New("shift is already open")
	ErrNotPaused            = errors.New("shift is not paused")
	ErrInvalidKind          = errors.New("invalid punch kind")
)
