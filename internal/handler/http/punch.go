package http

import (
	"encoding/json"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler.
func (h *punchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req punch.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	today, err := h.punchService.Record(r.Context(), identity.MemberID, identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", today)
}

// Today implements PunchHandler.
func (h *punchHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	today, err := h.punchService.Today(r.Context(), identity.MemberID, identity.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}
