package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/company"
	"github.com/pontolabs/ponto-backend-go/internal/domain/evaluation"
	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/domain/member"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrMissingClaims):
		Unauthorized(w, "Required claims missing from token")

	// Member / company errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, member.ErrNotAnEmployee):
		BadRequest(w, "Member is not an employee", nil)
	case errors.Is(err, member.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Punch sequence errors
	case errors.Is(err, punch.ErrShiftAlreadyFinished):
		Conflict(w, "Shift already finished today")
	case errors.Is(err, punch.ErrAlreadyOpen):
		Conflict(w, "Shift is already open")
	case errors.Is(err, punch.ErrNotClockedIn):
		Conflict(w, "No open shift to pause or finish")
	case errors.Is(err, punch.ErrNotPaused):
		Conflict(w, "Shift is not paused")
	case errors.Is(err, punch.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)

	// Schedule errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No schedule found for member")
	case errors.Is(err, schedule.ErrInvalidFixedWindow):
		BadRequest(w, "Fixed end time must be after fixed start time", nil)

	// Justification errors
	case errors.Is(err, justification.ErrNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyExists):
		Conflict(w, "A justification already exists for this day")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification has already been reviewed")
	case errors.Is(err, justification.ErrInvalidStatus):
		BadRequest(w, "Status must be APPROVED or REJECTED", nil)

	// Data integrity
	case errors.Is(err, evaluation.ErrDuplicateJustification):
		InternalServerError(w, "Conflicting justifications stored for the same day")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
