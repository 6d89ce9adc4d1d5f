package evaluation

import "errors"

var (
	// ErrDuplicateJustification flags more than one justification stored for
	// the same member and date. The persistence layer enforces uniqueness, so
	// hitting this means the data needs operator attention.
	ErrDuplicateJustification = errors.New("duplicate justification for the same day")
)
