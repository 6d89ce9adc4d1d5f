package schedule

import "context"

// ScheduleService defines admin operations on schedules and shift overrides
type ScheduleService interface {
	// GetSchedule returns a member's schedule configuration.
	GetSchedule(ctx context.Context, memberID string, companyID string) (ScheduleResponse, error)

	// UpdateSchedule replaces a member's schedule configuration. Fixed windows
	// with end at or before start are rejected.
	UpdateSchedule(ctx context.Context, companyID string, req UpdateScheduleRequest) (ScheduleResponse, error)

	// UpsertShifts expands the reference date per scope and upserts one
	// override per date. Idempotent on identical input.
	UpsertShifts(ctx context.Context, companyID string, req UpsertShiftRequest) (UpsertShiftResponse, error)

	// ListShifts returns a member's overrides in [start, end].
	ListShifts(ctx context.Context, memberID string, companyID string, start, end string) ([]ShiftResponse, error)
}
