package repository

import (
	"context"

	"brilliantstylist/internal/model"
)

// SubmissionRepository persists uploaded outfit photos (the user_outfits table).
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) (*model.Submission, error)
	FindByID(ctx context.Context, id string) (*model.Submission, error)

	// LatestByUser returns the user's newest submission.
	LatestByUser(ctx context.Context, userID string) (*model.Submission, error)

	// ListByUserWithCounts returns the user's submissions, newest first, each with its tally.
	ListByUserWithCounts(ctx context.Context, userID string) ([]model.SubmissionStats, error)
}
