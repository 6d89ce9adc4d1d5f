package member

import "errors"

var (
	ErrMemberNotFound = errors.New("company member not found")
	ErrNotAnEmployee  = errors.New("member is not an employee")
	ErrAdminRequired  = errors.New("admin privilege required")
)
