package evaluation

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

// WorkedMinutes converts one day's chronologically ordered punches into
// worked minutes by pairing opening punches (entry/return) with the next
// closing punch (pause/exit). An opening punch overwrites any interval left
// open before it; a closing punch with nothing open is ignored, so malformed
// sequences degrade instead of erroring. When the sequence ends open and
// nowIfOpen is supplied (only valid for today), the trailing interval is
// closed at nowIfOpen to model an in-progress shift.
//
// The result is fractional minutes; callers floor it for display only.
func WorkedMinutes(punches []punch.Punch, nowIfOpen *time.Time) float64 {
	var total time.Duration
	var openSince *time.Time

	for i := range punches {
		p := punches[i]
		switch {
		case p.Kind.Opens():
			ts := p.Timestamp
			openSince = &ts
		case p.Kind.Closes():
			if openSince != nil {
				total += p.Timestamp.Sub(*openSince)
				openSince = nil
			}
		}
	}

	if openSince != nil && nowIfOpen != nil {
		total += nowIfOpen.Sub(*openSince)
	}

	return total.Minutes()
}

// firstEntryTime returns the timestamp of the day's first entry punch.
func firstEntryTime(punches []punch.Punch) *time.Time {
	for i := range punches {
		if punches[i].Kind == punch.KindEntry {
			ts := punches[i].Timestamp
			return &ts
		}
	}
	return nil
}

// hasExit reports whether the day contains an exit punch.
func hasExit(punches []punch.Punch) bool {
	for i := range punches {
		if punches[i].Kind == punch.KindExit {
			return true
		}
	}
	return false
}
