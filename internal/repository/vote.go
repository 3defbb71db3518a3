package repository

import (
	"context"

	"brilliantstylist/internal/model"
)

// VoteRepository persists peer ratings and answers tally queries.
type VoteRepository interface {
	// Create inserts a vote. A second vote by the same voter on the same
	// submission fails with a unique violation.
	Create(ctx context.Context, v *model.Vote) (*model.Vote, error)

	// Counts aggregates brilliant and meh votes for one submission.
	Counts(ctx context.Context, submissionID string) (model.VoteCounts, error)

	// NextUnvoted picks a random submission that voterID neither owns nor has voted on.
	// Returns sql.ErrNoRows when none is left.
	NextUnvoted(ctx context.Context, voterID string) (*model.Submission, error)

	// Leaderboard returns every submission with its brilliant count and uploader
	// name, newest first. Ranking is left to the caller.
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}
