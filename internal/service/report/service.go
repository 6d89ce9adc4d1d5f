package report

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/member"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	evalcore "github.com/pontolabs/ponto-backend-go/internal/service/evaluation"
)

type reportService struct {
	memberRepo        member.MemberRepository
	scheduleRepo      schedule.ScheduleRepository
	shiftRepo         schedule.ShiftRepository
	punchRepo         punch.PunchRepository
	justificationRepo justification.JustificationRepository
	now               func() time.Time
}

func NewReportService(
	memberRepo member.MemberRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo schedule.ShiftRepository,
	punchRepo punch.PunchRepository,
	justificationRepo justification.JustificationRepository,
) evaluation.ReportService {
	return &reportService{
		memberRepo:        memberRepo,
		scheduleRepo:      scheduleRepo,
		shiftRepo:         shiftRepo,
		punchRepo:         punchRepo,
		justificationRepo: justificationRepo,
		now:               time.Now,
	}
}

// memberData is everything the evaluator needs for one member and window.
type memberData struct {
	overrides      []schedule.ShiftOverride
	punches        []punch.Punch
	justifications []justification.Justification
}

// loadMemberData fetches the three per-member collections concurrently.
func (s *reportService) loadMemberData(ctx context.Context, memberID, companyID string, start, end time.Time) (memberData, error) {
	var data memberData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.overrides, err = s.shiftRepo.ListForRange(gctx, memberID, start, end, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		// The punch query is half-open on timestamps, so extend past the
		// last day's midnight.
		data.punches, err = s.punchRepo.ListForRange(gctx, memberID, start, end.AddDate(0, 0, 1), companyID)
		return err
	})
	g.Go(func() error {
		var err error
		data.justifications, err = s.justificationRepo.ListForRange(gctx, memberID, start, end, companyID)
		return err
	})

	if err := g.Wait(); err != nil {
		return memberData{}, err
	}
	return data, nil
}

// MyCalendar implements evaluation.ReportService.
func (s *reportService) MyCalendar(ctx context.Context, memberID string, companyID string, req evaluation.CalendarRequest) (evaluation.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return evaluation.CalendarResponse{}, err
	}
	monthStart, _ := validator.IsValidMonth(req.Month)
	monthEnd := monthStart.AddDate(0, 1, -1)

	cfg, err := s.scheduleRepo.GetByMember(ctx, memberID, companyID)
	if err != nil {
		return evaluation.CalendarResponse{}, err
	}
	data, err := s.loadMemberData(ctx, memberID, companyID, monthStart, monthEnd)
	if err != nil {
		return evaluation.CalendarResponse{}, err
	}

	verdicts, err := evalcore.EvaluateRange(evalcore.RangeInput{
		Start:          monthStart,
		End:            monthEnd,
		AsOf:           s.now(),
		Config:         cfg,
		Overrides:      data.overrides,
		Punches:        data.punches,
		Justifications: data.justifications,
	}, evalcore.ModeCalendar)
	if err != nil {
		return evaluation.CalendarResponse{}, err
	}

	resp := evaluation.CalendarResponse{
		Month: req.Month,
		Days:  make([]evaluation.CalendarDay, 0, len(verdicts)),
	}
	for _, v := range verdicts {
		resp.Days = append(resp.Days, toCalendarDay(v))
	}
	return resp, nil
}

// Inconsistencies implements evaluation.ReportService. Every employee's
// window is evaluated concurrently, then the per-member issues merge into
// one list, newest first.
func (s *reportService) Inconsistencies(ctx context.Context, companyID string, req evaluation.InconsistencyRequest) (evaluation.InconsistencyReport, error) {
	if err := req.Validate(); err != nil {
		return evaluation.InconsistencyReport{}, err
	}

	now := s.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(req.WindowDays - 1))

	employees, err := s.memberRepo.ListEmployees(ctx, companyID)
	if err != nil {
		return evaluation.InconsistencyReport{}, err
	}
	configs, err := s.scheduleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return evaluation.InconsistencyReport{}, err
	}
	configByMember := make(map[string]schedule.Config, len(configs))
	for _, cfg := range configs {
		configByMember[cfg.MemberID] = cfg
	}

	type memberIssues struct {
		member   member.Member
		verdicts []evaluation.DayVerdict
	}

	results := make([]memberIssues, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			cfg, ok := configByMember[emp.ID]
			if !ok {
				return nil
			}
			data, err := s.loadMemberData(gctx, emp.ID, companyID, start, end)
			if err != nil {
				return err
			}
			verdicts, err := evalcore.EvaluateRange(evalcore.RangeInput{
				Start:          start,
				End:            end,
				AsOf:           now,
				Config:         cfg,
				Overrides:      data.overrides,
				Punches:        data.punches,
				Justifications: data.justifications,
			}, evalcore.ModeInconsistency)
			if err != nil {
				return err
			}
			results[i] = memberIssues{member: emp, verdicts: verdicts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return evaluation.InconsistencyReport{}, err
	}

	var items []evaluation.InconsistencyItem
	for _, res := range results {
		for _, v := range res.verdicts {
			items = append(items, toInconsistencyItem(res.member, v))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].MemberName < items[j].MemberName
	})

	return evaluation.InconsistencyReport{
		WindowStart: start.Format("2006-01-02"),
		WindowEnd:   end.Format("2006-01-02"),
		GeneratedAt: now.Format(time.RFC3339),
		Items:       items,
	}, nil
}

// MemberSummary implements evaluation.ReportService.
func (s *reportService) MemberSummary(ctx context.Context, companyID string, req evaluation.SummaryRequest) (evaluation.MemberSummary, error) {
	if err := req.Validate(); err != nil {
		return evaluation.MemberSummary{}, err
	}
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	m, err := s.memberRepo.GetByID(ctx, req.MemberID, companyID)
	if err != nil {
		return evaluation.MemberSummary{}, err
	}
	if m.Role != member.RoleEmployee {
		return evaluation.MemberSummary{}, member.ErrNotAnEmployee
	}

	cfg, err := s.scheduleRepo.GetByMember(ctx, req.MemberID, companyID)
	if err != nil {
		return evaluation.MemberSummary{}, err
	}
	data, err := s.loadMemberData(ctx, req.MemberID, companyID, start, end)
	if err != nil {
		return evaluation.MemberSummary{}, err
	}

	verdicts, err := evalcore.EvaluateRange(evalcore.RangeInput{
		Start:          start,
		End:            end,
		AsOf:           s.now(),
		Config:         cfg,
		Overrides:      data.overrides,
		Punches:        data.punches,
		Justifications: data.justifications,
	}, evalcore.ModeCalendar)
	if err != nil {
		return evaluation.MemberSummary{}, err
	}

	summary := evaluation.MemberSummary{
		MemberID:   m.ID,
		MemberName: m.FullName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       make([]evaluation.CalendarDay, 0, len(verdicts)),
	}
	for _, v := range verdicts {
		summary.Days = append(summary.Days, toCalendarDay(v))
		summary.Totals.WorkedMinutes += v.WorkedMinutes
		summary.Totals.TargetMinutes += v.TargetMinutes
		switch v.Status {
		case evaluation.StatusLate:
			summary.Totals.LateDays++
		case evaluation.StatusAbsent:
			summary.Totals.AbsentDays++
		case evaluation.StatusIncomplete:
			summary.Totals.IncompleteDays++
		case evaluation.StatusJustified:
			summary.Totals.JustifiedDays++
		}
	}
	return summary, nil
}

func toCalendarDay(v evaluation.DayVerdict) evaluation.CalendarDay {
	return evaluation.CalendarDay{
		Date:           v.Date.Format("2006-01-02"),
		Status:         string(v.Status),
		Label:          v.Label,
		WorkedMinutes:  v.WorkedMinutes,
		TargetMinutes:  v.TargetMinutes,
		LateMinutes:    v.LateMinutes,
		DeficitMinutes: v.DeficitMinutes,
		TargetWindow:   v.TargetWindow,
		Justification:  toJustificationResponse(v.Justification),
	}
}

func toInconsistencyItem(m member.Member, v evaluation.DayVerdict) evaluation.InconsistencyItem {
	return evaluation.InconsistencyItem{
		Date:           v.Date.Format("2006-01-02"),
		MemberID:       m.ID,
		MemberName:     m.FullName,
		Status:         string(v.Status),
		Details:        v.Label,
		LateMinutes:    v.LateMinutes,
		DeficitMinutes: v.DeficitMinutes,
		Justification:  toJustificationResponse(v.Justification),
	}
}

func toJustificationResponse(j *justification.Justification) *justification.JustificationResponse {
	if j == nil {
		return nil
	}
	return &justification.JustificationResponse{
		ID:            j.ID,
		MemberID:      j.MemberID,
		MemberName:    j.MemberName,
		Date:          j.Date.Format("2006-01-02"),
		Reason:        j.Reason,
		Status:        string(j.Status),
		AttachmentRef: j.AttachmentRef,
		AdminNotes:    j.AdminNotes,
		CreatedAt:     j.CreatedAt.Format(time.RFC3339),
	}
}
