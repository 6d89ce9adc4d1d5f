package justification

import "errors"

// Justification domain errors
var (
	ErrNotFound         = errors.New("justification not found")
	ErrAlreadyExists    = errors.New("a justification already exists for this day")
	ErrAlreadyProcessed = errors.New("justification has already been approved or rejected")
	ErrInvalidStatus    = errors.New("status must be APPROVED or REJECTED")
)
