package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
)

type scheduleService struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
	shiftRepo    schedule.ShiftRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo schedule.ShiftRepository,
) schedule.ScheduleService {
	return &scheduleService{
		db:           db,
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *scheduleService) GetSchedule(ctx context.Context, memberID string, companyID string) (schedule.ScheduleResponse, error) {
	cfg, err := s.scheduleRepo.GetByMember(ctx, memberID, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(cfg), nil
}

// UpdateSchedule implements schedule.ScheduleService.
func (s *scheduleService) UpdateSchedule(ctx context.Context, companyID string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	cfg, err := s.scheduleRepo.GetByMember(ctx, req.MemberID, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	cfg.Type = schedule.ScheduleType(req.Type)
	cfg.WorkDays = req.WorkDays
	cfg.ToleranceMinutes = req.ToleranceMinutes
	cfg.FallbackDailyMinutes = req.FallbackDailyMinutes

	cfg.FixedStart = nil
	cfg.FixedEnd = nil
	if req.FixedStartTime != nil {
		tod, err := schedule.ParseTimeOfDay(*req.FixedStartTime)
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		cfg.FixedStart = &tod
	}
	if req.FixedEndTime != nil {
		tod, err := schedule.ParseTimeOfDay(*req.FixedEndTime)
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		cfg.FixedEnd = &tod
	}

	// A degenerate fixed window would put every day permanently in deficit,
	// so it is refused here rather than patched over at evaluation time.
	if cfg.Type == schedule.ScheduleTypeFixed && cfg.FixedStart != nil && cfg.FixedEnd != nil {
		if cfg.FixedEnd.MinuteOfDay() <= cfg.FixedStart.MinuteOfDay() {
			return schedule.ScheduleResponse{}, schedule.ErrInvalidFixedWindow
		}
	}

	if err := s.scheduleRepo.Update(ctx, cfg); err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(cfg), nil
}

// UpsertShifts implements schedule.ScheduleService.
func (s *scheduleService) UpsertShifts(ctx context.Context, companyID string, req schedule.UpsertShiftRequest) (schedule.UpsertShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.UpsertShiftResponse{}, err
	}

	// Member must exist in this company.
	if _, err := s.scheduleRepo.GetByMember(ctx, req.MemberID, companyID); err != nil {
		return schedule.UpsertShiftResponse{}, err
	}

	reference, err := time.Parse("2006-01-02", req.ReferenceDate)
	if err != nil {
		return schedule.UpsertShiftResponse{}, fmt.Errorf("bad reference_date: %w", err)
	}
	startTime, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return schedule.UpsertShiftResponse{}, err
	}

	dates := ExpandScope(reference, schedule.ShiftScope(req.Scope))

	shifts := make([]schedule.ShiftOverride, 0, len(dates))
	for _, d := range dates {
		shifts = append(shifts, schedule.ShiftOverride{
			MemberID:        req.MemberID,
			CompanyID:       companyID,
			Date:            d,
			StartTime:       startTime,
			DurationMinutes: req.DurationMinutes,
		})
	}

	// All dates of the expansion land or none do.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.shiftRepo.Upsert(txCtx, shifts)
	})
	if err != nil {
		return schedule.UpsertShiftResponse{}, err
	}

	resp := schedule.UpsertShiftResponse{
		DaysApplied: len(shifts),
		Shifts:      make([]schedule.ShiftResponse, 0, len(shifts)),
	}
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, toShiftResponse(sh))
	}
	return resp, nil
}

// ListShifts implements schedule.ScheduleService.
func (s *scheduleService) ListShifts(ctx context.Context, memberID string, companyID string, start, end string) ([]schedule.ShiftResponse, error) {
	startDate, ok := validator.IsValidDate(start)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "start", Message: "start must be YYYY-MM-DD"}}
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "end", Message: "end must be YYYY-MM-DD"}}
	}

	shifts, err := s.shiftRepo.ListForRange(ctx, memberID, startDate, endDate, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// ExpandScope turns a reference date into the list of dates an override
// applies to: the date alone, its Sunday-to-Saturday week, or its calendar
// month.
func ExpandScope(reference time.Time, scope schedule.ShiftScope) []time.Time {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	switch scope {
	case schedule.ShiftScopeWeek:
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		dates := make([]time.Time, 7)
		for i := range dates {
			dates[i] = sunday.AddDate(0, 0, i)
		}
		return dates

	case schedule.ShiftScopeMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		next := first.AddDate(0, 1, 0)
		var dates []time.Time
		for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
		return dates

	default:
		return []time.Time{day}
	}
}

func toScheduleResponse(cfg schedule.Config) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		MemberID:             cfg.MemberID,
		Type:                 string(cfg.Type),
		WorkDays:             cfg.WorkDays,
		ToleranceMinutes:     cfg.ToleranceMinutes,
		FallbackDailyMinutes: cfg.FallbackDailyMinutes,
		JoinedOn:             cfg.JoinedOn.Format("2006-01-02"),
	}
	if cfg.FixedStart != nil {
		s := cfg.FixedStart.String()
		resp.FixedStartTime = &s
	}
	if cfg.FixedEnd != nil {
		s := cfg.FixedEnd.String()
		resp.FixedEndTime = &s
	}
	return resp
}

func toShiftResponse(sh schedule.ShiftOverride) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		MemberID:        sh.MemberID,
		Date:            sh.Date.Format("2006-01-02"),
		StartTime:       sh.StartTime.String(),
		DurationMinutes: sh.DurationMinutes,
	}
}
