package justification

import (
	"context"
	"errors"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/justification"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type justificationService struct {
	justificationRepo justification.JustificationRepository
}

func NewJustificationService(justificationRepo justification.JustificationRepository) justification.JustificationService {
	return &justificationService{justificationRepo: justificationRepo}
}

// Submit implements justification.JustificationService.
func (s *justificationService) Submit(ctx context.Context, memberID string, companyID string, req justification.SubmitRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.justificationRepo.Create(ctx, justification.Justification{
		MemberID:      memberID,
		CompanyID:     companyID,
		Date:          date,
		Reason:        req.Reason,
		AttachmentRef: req.AttachmentRef,
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	return toResponse(created), nil
}

// ListMine implements justification.JustificationService.
func (s *justificationService) ListMine(ctx context.Context, memberID string, companyID string, start, end string) ([]justification.JustificationResponse, error) {
	startDate, ok := validator.IsValidDate(start)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "start", Message: "start must be YYYY-MM-DD"}}
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "end", Message: "end must be YYYY-MM-DD"}}
	}

	items, err := s.justificationRepo.ListForRange(ctx, memberID, startDate, endDate, companyID)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

// Review implements justification.JustificationService. Only PENDING
// justifications move; a second review reports the conflict instead of
// silently rewriting history.
func (s *justificationService) Review(ctx context.Context, companyID string, reviewerID string, req justification.ReviewRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	current, err := s.justificationRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if current.Status != justification.StatusPending {
		return justification.JustificationResponse{}, justification.ErrAlreadyProcessed
	}

	status := justification.Status(req.Status)
	err = s.justificationRepo.UpdateStatus(ctx, req.ID, companyID, status, reviewerID, req.AdminNotes)
	if err != nil {
		// The row can be reviewed between the read and the guarded update.
		if errors.Is(err, justification.ErrAlreadyProcessed) {
			return justification.JustificationResponse{}, justification.ErrAlreadyProcessed
		}
		return justification.JustificationResponse{}, err
	}

	current.Status = status
	current.AdminNotes = req.AdminNotes
	current.ReviewedBy = &reviewerID
	now := time.Now()
	current.ReviewedAt = &now
	return toResponse(current), nil
}

// ListForReview implements justification.JustificationService.
func (s *justificationService) ListForReview(ctx context.Context, companyID string, status string) ([]justification.JustificationResponse, error) {
	if status == "" {
		status = string(justification.StatusPending)
	}
	if !validator.IsInSlice(status, []string{
		string(justification.StatusPending),
		string(justification.StatusApproved),
		string(justification.StatusRejected),
	}) {
		return nil, justification.ErrInvalidStatus
	}

	items, err := s.justificationRepo.ListByStatus(ctx, companyID, justification.Status(status))
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponse(j justification.Justification) justification.JustificationResponse {
	return justification.JustificationResponse{
		ID:            j.ID,
		MemberID:      j.MemberID,
		MemberName:    j.MemberName,
		Date:          j.Date.Format("2006-01-02"),
		Reason:        j.Reason,
		Status:        string(j.Status),
		AttachmentRef: j.AttachmentRef,
		AdminNotes:    j.AdminNotes,
		CreatedAt:     j.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(items []justification.Justification) []justification.JustificationResponse {
	responses := make([]justification.JustificationResponse, 0, len(items))
	for _, j := range items {
		responses = append(responses, toResponse(j))
	}
	return responses
}
