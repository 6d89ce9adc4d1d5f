package punch

import "time"

// Kind is the clock event type. Values match the original wire vocabulary
// (entry/pause/return/exit).
type Kind string

const (
	KindEntry  Kind = "entry"
	KindPause  Kind = "pause"
	KindReturn Kind = "return"
	KindExit   Kind = "exit"
)

var KindValues = []string{
	string(KindEntry),
	string(KindPause),
	string(KindReturn),
	string(KindExit),
}

// Opens reports whether the punch opens a working interval.
func (k Kind) Opens() bool {
	return k == KindEntry || k == KindReturn
}

// Closes reports whether the punch closes a working interval.
func (k Kind) Closes() bool {
	return k == KindPause || k == KindExit
}

// Punch is a single immutable clock event.
type Punch struct {
	ID        string
	MemberID  string
	CompanyID string
	Kind      Kind
	Timestamp time.Time
	CreatedAt time.Time
}
