package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound   = errors.New("no schedule found for member")
	ErrInvalidFixedWindow = errors.New("fixed end time must be after fixed start time")
)
