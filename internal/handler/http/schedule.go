package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpsertShifts(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	memberID := chi.URLParam(r, "memberID")
	resp, err := h.scheduleService.GetSchedule(r.Context(), memberID, identity.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ScheduleHandler.
func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MemberID = chi.URLParam(r, "memberID")

	resp, err := h.scheduleService.UpdateSchedule(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpsertShifts implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpsertShifts(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MemberID = chi.URLParam(r, "memberID")

	resp, err := h.scheduleService.UpsertShifts(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shifts applied", resp)
}

// ListShifts implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	memberID := chi.URLParam(r, "memberID")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	resp, err := h.scheduleService.ListShifts(r.Context(), memberID, identity.CompanyID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
