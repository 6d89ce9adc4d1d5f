package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	reportService "github.com/pontolabs/ponto-backend-go/internal/service/report"
)

func main() {
	root := &cobra.Command{
		Use:           "reportctl",
		Short:         "Attendance report operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInconsistenciesCmd())
	root.AddCommand(newSweepCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openDatabase() (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, db, nil
}

func newInconsistenciesCmd() *cobra.Command {
	var (
		companyID string
		days      int
	)

	cmd := &cobra.Command{
		Use:   "inconsistencies",
		Short: "Print a company's attendance issues for the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == "" {
				return fmt.Errorf("--company is required")
			}

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()
			if days == 0 {
				days = cfg.Report.WindowDays
			}

			reportSvc := reportService.NewReportService(
				postgresql.NewMemberRepository(db),
				postgresql.NewScheduleRepository(db),
				postgresql.NewShiftRepository(db),
				postgresql.NewPunchRepository(db),
				postgresql.NewJustificationRepository(db),
			)

			report, err := reportSvc.Inconsistencies(cmd.Context(), companyID, evaluation.InconsistencyRequest{WindowDays: days})
			if err != nil {
				return err
			}

			fmt.Printf("Window %s .. %s (%d issues)\n\n", report.WindowStart, report.WindowEnd, len(report.Items))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tMEMBER\tSTATUS\tLATE\tDEFICIT")
			for _, item := range report.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					item.Date, item.MemberName, item.Status, item.LateMinutes, item.DeficitMinutes)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id")
	cmd.Flags().IntVar(&days, "days", 0, "trailing window in days (default from config)")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Log absences for one past day into the inconsistency log",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
			}

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			jobs := cron.NewAbsenceSweepJobs(
				postgresql.NewCompanyRepository(db),
				postgresql.NewScheduleRepository(db),
				postgresql.NewShiftRepository(db),
				postgresql.NewPunchRepository(db),
				postgresql.NewJustificationRepository(db),
				postgresql.NewInconsistencyLogRepository(db),
				cfg.Report.AbsenceSweepEvery,
			)
			return jobs.SweepDay(cmd.Context(), day)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().AddDate(0, 0, -1).Format("2006-01-02"), "day to sweep")
	return cmd
}
