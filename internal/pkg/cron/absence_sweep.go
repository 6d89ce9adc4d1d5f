package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/company"
	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	evalcore "github.com/pontolabs/ponto-backend-go/internal/service/evaluation"
)

// AbsenceSweepJobs walks every company after midnight and logs the previous
// day's absences into the inconsistency log. The log is an audit trail;
// reports still recompute verdicts live.
type AbsenceSweepJobs struct {
	companyRepo       company.CompanyRepository
	scheduleRepo      schedule.ScheduleRepository
	shiftRepo         schedule.ShiftRepository
	punchRepo         punch.PunchRepository
	justificationRepo justification.JustificationRepository
	logRepo           evaluation.InconsistencyLogRepository
	interval          time.Duration
	now               func() time.Time
}

func NewAbsenceSweepJobs(
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo schedule.ShiftRepository,
	punchRepo punch.PunchRepository,
	justificationRepo justification.JustificationRepository,
	logRepo evaluation.InconsistencyLogRepository,
	interval time.Duration,
) *AbsenceSweepJobs {
	return &AbsenceSweepJobs{
		companyRepo:       companyRepo,
		scheduleRepo:      scheduleRepo,
		shiftRepo:         shiftRepo,
		punchRepo:         punchRepo,
		justificationRepo: justificationRepo,
		logRepo:           logRepo,
		interval:          interval,
		now:               time.Now,
	}
}

func (j *AbsenceSweepJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("absence_sweep", j.interval, j.SweepAbsences)
}

// SweepAbsences runs hourly but only acts in the first hour of the day,
// once yesterday is fully in the past. The conflict target on the log
// table keeps reruns idempotent.
func (j *AbsenceSweepJobs) SweepAbsences(ctx context.Context) error {
	now := j.now()
	if now.Hour() != 0 {
		return nil
	}
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	return j.SweepDay(ctx, yesterday)
}

// SweepDay logs absences for one specific past day across every company.
func (j *AbsenceSweepJobs) SweepDay(ctx context.Context, day time.Time) error {
	now := j.now()

	companyIDs, err := j.companyRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	total := 0
	for _, companyID := range companyIDs {
		inserted, err := j.sweepCompany(ctx, companyID, day, now)
		if err != nil {
			slog.Error("Cron: absence sweep failed for company",
				"company_id", companyID, "date", day.Format("2006-01-02"), "error", err)
			continue
		}
		total += inserted
	}

	slog.Info("Cron: absence sweep finished",
		"date", day.Format("2006-01-02"), "companies", len(companyIDs), "absences_logged", total)
	return nil
}

// sweepCompany loads the whole company's data for the day in three
// queries and groups it per member, instead of querying member by member.
func (j *AbsenceSweepJobs) sweepCompany(ctx context.Context, companyID string, day time.Time, now time.Time) (int, error) {
	configs, err := j.scheduleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}

	punches, err := j.punchRepo.ListForCompanyRange(ctx, companyID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	punchesByMember := make(map[string][]punch.Punch)
	for _, p := range punches {
		punchesByMember[p.MemberID] = append(punchesByMember[p.MemberID], p)
	}

	overrides, err := j.shiftRepo.ListForCompanyRange(ctx, companyID, day, day)
	if err != nil {
		return 0, err
	}
	overrideByMember := make(map[string]schedule.ShiftOverride)
	for _, o := range overrides {
		overrideByMember[o.MemberID] = o
	}

	justifications, err := j.justificationRepo.ListForCompanyRange(ctx, companyID, day, day)
	if err != nil {
		return 0, err
	}
	justificationByMember := make(map[string]justification.Justification)
	for _, jst := range justifications {
		justificationByMember[jst.MemberID] = jst
	}

	var entries []evaluation.InconsistencyLogEntry
	for _, cfg := range configs {
		input := evalcore.DayInput{
			Date:    day,
			AsOf:    now,
			Config:  cfg,
			Punches: punchesByMember[cfg.MemberID],
		}
		if o, ok := overrideByMember[cfg.MemberID]; ok {
			input.Override = &o
		}
		if jst, ok := justificationByMember[cfg.MemberID]; ok {
			input.Justification = &jst
		}

		verdict := evalcore.EvaluateDay(input)
		if verdict.Status == evaluation.StatusAbsent {
			entries = append(entries, evaluation.InconsistencyLogEntry{
				CompanyID: companyID,
				MemberID:  cfg.MemberID,
				Date:      day,
				Status:    verdict.Status,
			})
		}
	}

	if len(entries) == 0 {
		return 0, nil
	}
	return j.logRepo.RecordAbsences(ctx, entries)
}
