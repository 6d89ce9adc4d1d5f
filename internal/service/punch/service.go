package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	evalcore "github.com/pontolabs/ponto-backend-go/internal/service/evaluation"
)

type punchService struct {
	punchRepo    punch.PunchRepository
	scheduleRepo schedule.ScheduleRepository
	shiftRepo    schedule.ShiftRepository
	now          func() time.Time
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo schedule.ShiftRepository,
) punch.PunchService {
	return &punchService{
		punchRepo:    punchRepo,
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
		now:          time.Now,
	}
}

// shiftState is the member's position in the day's punch sequence.
type shiftState int

const (
	stateIdle shiftState = iota // no punches yet
	stateWorking
	statePaused
	stateFinished
)

func currentState(punches []punch.Punch) shiftState {
	state := stateIdle
	for _, p := range punches {
		switch p.Kind {
		case punch.KindEntry:
			state = stateWorking
		case punch.KindPause:
			state = statePaused
		case punch.KindReturn:
			state = stateWorking
		case punch.KindExit:
			state = stateFinished
		}
	}
	return state
}

// validateTransition enforces the one-shift-per-day rule and sequence
// sanity: entry only from idle, pause only while working, return only while
// paused, exit only while working or paused. A finished shift accepts
// nothing further that day.
func validateTransition(state shiftState, kind punch.Kind) error {
	if state == stateFinished {
		return punch.ErrShiftAlreadyFinished
	}

	switch kind {
	case punch.KindEntry:
		if state != stateIdle {
			return punch.ErrAlreadyOpen
		}
	case punch.KindPause:
		if state != stateWorking {
			return punch.ErrNotClockedIn
		}
	case punch.KindReturn:
		if state != statePaused {
			return punch.ErrNotPaused
		}
	case punch.KindExit:
		if state == stateIdle {
			return punch.ErrNotClockedIn
		}
	default:
		return punch.ErrInvalidKind
	}
	return nil
}

// Record implements punch.PunchService.
func (s *punchService) Record(ctx context.Context, memberID string, companyID string, req punch.RecordPunchRequest) (punch.TodayResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.TodayResponse{}, err
	}
	kind := punch.Kind(req.Kind)

	now := s.now()
	dayStart := startOfDay(now)

	punches, err := s.punchRepo.ListForDay(ctx, memberID, dayStart, companyID)
	if err != nil {
		return punch.TodayResponse{}, fmt.Errorf("failed to load today's punches: %w", err)
	}

	if err := validateTransition(currentState(punches), kind); err != nil {
		return punch.TodayResponse{}, err
	}

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		MemberID:  memberID,
		CompanyID: companyID,
		Kind:      kind,
		Timestamp: now,
	})
	if err != nil {
		return punch.TodayResponse{}, err
	}

	punches = append(punches, created)
	return s.buildToday(ctx, memberID, companyID, punches, now)
}

// Today implements punch.PunchService.
func (s *punchService) Today(ctx context.Context, memberID string, companyID string) (punch.TodayResponse, error) {
	now := s.now()
	dayStart := startOfDay(now)

	punches, err := s.punchRepo.ListForDay(ctx, memberID, dayStart, companyID)
	if err != nil {
		return punch.TodayResponse{}, fmt.Errorf("failed to load today's punches: %w", err)
	}

	return s.buildToday(ctx, memberID, companyID, punches, now)
}

func (s *punchService) buildToday(ctx context.Context, memberID string, companyID string, punches []punch.Punch, now time.Time) (punch.TodayResponse, error) {
	cfg, err := s.scheduleRepo.GetByMember(ctx, memberID, companyID)
	if err != nil {
		return punch.TodayResponse{}, err
	}

	dayStart := startOfDay(now)
	overrides, err := s.shiftRepo.ListForRange(ctx, memberID, dayStart, dayStart, companyID)
	if err != nil {
		return punch.TodayResponse{}, err
	}
	var override *schedule.ShiftOverride
	if len(overrides) > 0 {
		override = &overrides[0]
	}

	verdict := evalcore.EvaluateDay(evalcore.DayInput{
		Date:     dayStart,
		AsOf:     now,
		Config:   cfg,
		Override: override,
		Punches:  punches,
	})
	target := evalcore.ResolveTarget(dayStart, cfg, override)

	state := currentState(punches)

	resp := punch.TodayResponse{
		Date:             dayStart.Format("2006-01-02"),
		Punches:          make([]punch.PunchResponse, 0, len(punches)),
		WorkedMinutes:    verdict.WorkedMinutes,
		ShiftOpen:        state == stateWorking || state == statePaused,
		ShiftFinished:    state == stateFinished,
		Occurrences:      occurrences(verdict),
		ScheduleLabel:    target.Window(),
		TargetMinutes:    target.Minutes,
		ToleranceMinutes: cfg.ToleranceMinutes,
	}
	for _, p := range punches {
		resp.Punches = append(resp.Punches, punch.PunchResponse{
			ID:        p.ID,
			Kind:      string(p.Kind),
			Timestamp: p.Timestamp.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// occurrences lists the live issues of the day so the dashboard can warn
// the member while the shift is still running.
func occurrences(verdict evaluation.DayVerdict) []string {
	var occ []string
	if verdict.LateMinutes > 0 {
		occ = append(occ, fmt.Sprintf("Atrasado (%d min)", verdict.LateMinutes))
	}
	if verdict.Status == evaluation.StatusIncomplete {
		occ = append(occ, fmt.Sprintf("Incompleto (faltam %d min)", verdict.DeficitMinutes))
	}
	return occ
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
