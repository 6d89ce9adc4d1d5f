package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	ListForReview(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{justificationService: justificationService}
}

// Submit implements JustificationHandler.
func (h *justificationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req justification.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.justificationService.Submit(r.Context(), identity.MemberID, identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification submitted", resp)
}

// ListMine implements JustificationHandler.
func (h *justificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	resp, err := h.justificationService.ListMine(r.Context(), identity.MemberID, identity.CompanyID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Review implements JustificationHandler.
func (h *justificationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req justification.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.justificationService.Review(r.Context(), identity.CompanyID, identity.MemberID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListForReview implements JustificationHandler.
func (h *justificationHandlerImpl) ListForReview(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status := r.URL.Query().Get("status")

	resp, err := h.justificationService.ListForReview(r.Context(), identity.CompanyID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
