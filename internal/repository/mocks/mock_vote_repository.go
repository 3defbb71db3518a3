package mocks

import (
	"context"

	"brilliantstylist/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Create(ctx context.Context, v *model.Vote) (*model.Vote, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vote), args.Error(1)
}

func (m *MockVoteRepository) Counts(ctx context.Context, submissionID string) (model.VoteCounts, error) {
	args := m.Called(ctx, submissionID)
	return args.Get(0).(model.VoteCounts), args.Error(1)
}

func (m *MockVoteRepository) NextUnvoted(ctx context.Context, voterID string) (*model.Submission, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockVoteRepository) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}
