package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	justificationService "github.com/pontolabs/ponto-backend-go/internal/service/justification"
	punchService "github.com/pontolabs/ponto-backend-go/internal/service/punch"
	reportService "github.com/pontolabs/ponto-backend-go/internal/service/report"
	scheduleService "github.com/pontolabs/ponto-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	inconsistencyLogRepo := postgresql.NewInconsistencyLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	punchSvc := punchService.NewPunchService(punchRepo, scheduleRepo, shiftRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, shiftRepo)
	justificationSvc := justificationService.NewJustificationService(justificationRepo)
	reportSvc := reportService.NewReportService(memberRepo, scheduleRepo, shiftRepo, punchRepo, justificationRepo)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Report.WindowDays)

	router := appHTTP.NewRouter(
		jwtService,
		punchHandler,
		scheduleHandler,
		justificationHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	if cfg.Report.AbsenceSweepEnabled {
		sweepJobs := cron.NewAbsenceSweepJobs(
			companyRepo,
			scheduleRepo,
			shiftRepo,
			punchRepo,
			justificationRepo,
			inconsistencyLogRepo,
			cfg.Report.AbsenceSweepEvery,
		)
		sweepJobs.RegisterJobs(scheduler)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
