package justification

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// JUSTIFICATION DTOs
// ========================================

type SubmitRequest struct {
	Date          string  `json:"date"`
	Reason        string  `json:"reason"`
	AttachmentRef *string `json:"attachment_ref"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	ID         string  `json:"-"`
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationResponse struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"member_id"`
	MemberName    *string `json:"member_name,omitempty"`
	Date          string  `json:"date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AttachmentRef *string `json:"attachment_ref,omitempty"`
	AdminNotes    *string `json:"admin_notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
