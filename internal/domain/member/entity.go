package member

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Member is a person enrolled in a company. The schedule columns live on the
// member row (see schedule.Config); this entity carries identity only.
type Member struct {
	ID        string
	CompanyID string
	FullName  string
	Email     string
	Role      Role
	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
