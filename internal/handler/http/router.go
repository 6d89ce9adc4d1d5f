package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	punchHandler PunchHandler,
	scheduleHandler ScheduleHandler,
	justificationHandler JustificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee surface
			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Record)
				r.Get("/today", punchHandler.Today)
			})
			r.Get("/calendar", reportHandler.MyCalendar)
			r.Route("/justifications", func(r chi.Router) {
				r.Post("/", justificationHandler.Submit)
				r.Get("/", justificationHandler.ListMine)
			})

			// Admin surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/members/{memberID}", func(r chi.Router) {
					r.Get("/schedule", scheduleHandler.Get)
					r.Put("/schedule", scheduleHandler.Update)
					r.Post("/shifts", scheduleHandler.UpsertShifts)
					r.Get("/shifts", scheduleHandler.ListShifts)
					r.Get("/summary", reportHandler.MemberSummary)
				})

				r.Route("/justifications", func(r chi.Router) {
					r.Get("/", justificationHandler.ListForReview)
					r.Patch("/{id}", justificationHandler.Review)
				})

				r.Get("/inconsistencies", reportHandler.Inconsistencies)
			})
		})
	})
	return r
}
