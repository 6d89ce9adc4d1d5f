package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyCalendar(w http.ResponseWriter, r *http.Request)
	Inconsistencies(w http.ResponseWriter, r *http.Request)
	MemberSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService     evaluation.ReportService
	defaultWindowDays int
}

func NewReportHandler(reportService evaluation.ReportService, defaultWindowDays int) ReportHandler {
	return &reportHandlerImpl{
		reportService:     reportService,
		defaultWindowDays: defaultWindowDays,
	}
}

// MyCalendar implements ReportHandler.
func (h *reportHandlerImpl) MyCalendar(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := evaluation.CalendarRequest{Month: r.URL.Query().Get("month")}

	resp, err := h.reportService.MyCalendar(r.Context(), identity.MemberID, identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Inconsistencies implements ReportHandler.
func (h *reportHandlerImpl) Inconsistencies(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	days := h.defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "days must be a number", nil)
			return
		}
		days = parsed
	}

	resp, err := h.reportService.Inconsistencies(r.Context(), identity.CompanyID, evaluation.InconsistencyRequest{WindowDays: days})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MemberSummary implements ReportHandler.
func (h *reportHandlerImpl) MemberSummary(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := evaluation.SummaryRequest{
		MemberID:  chi.URLParam(r, "memberID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	resp, err := h.reportService.MemberSummary(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
