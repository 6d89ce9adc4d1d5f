package justification

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Justification is an employee-submitted excuse for one day's attendance
// issue. At most one exists per member and date; status only moves from
// PENDING to APPROVED or REJECTED.
type Justification struct {
	ID            string
	MemberID      string
	CompanyID     string
	Date          time.Time
	Reason        string
	Status        Status
	AttachmentRef *string
	AdminNotes    *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time

	// DTO
	MemberName *string
}
