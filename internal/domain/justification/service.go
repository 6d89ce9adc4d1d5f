package justification

import "context"

// JustificationService defines the submit/review workflow
type JustificationService interface {
	// Submit creates a PENDING justification for a member.
	Submit(ctx context.Context, memberID string, companyID string, req SubmitRequest) (JustificationResponse, error)

	// ListMine returns a member's justifications in [start, end].
	ListMine(ctx context.Context, memberID string, companyID string, start, end string) ([]JustificationResponse, error)

	// Review approves or rejects a PENDING justification (admin).
	Review(ctx context.Context, companyID string, reviewerID string, req ReviewRequest) (JustificationResponse, error)

	// ListForReview returns a company's justifications by status (admin).
	ListForReview(ctx context.Context, companyID string, status string) ([]JustificationResponse, error)
}
