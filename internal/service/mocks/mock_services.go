package mocks

import (
	"context"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*service.Me, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Me), args.Error(1)
}

type MockPromptService struct {
	mock.Mock
}

func (m *MockPromptService) Current(ctx context.Context) (*model.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptService) Get(ctx context.Context, id string) (*model.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptService) CreateCard(ctx context.Context, in service.CardInput) (*model.FashionCard, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FashionCard), args.Error(1)
}

func (m *MockPromptService) ListCards(ctx context.Context) ([]model.FashionCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FashionCard), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Upload(ctx context.Context, in service.UploadInput) (*model.Submission, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionService) Reveal(ctx context.Context, userID string) (*service.Reveal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Reveal), args.Error(1)
}

func (m *MockSubmissionService) ListByUser(ctx context.Context, userID string) ([]model.SubmissionStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubmissionStats), args.Error(1)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) Cast(ctx context.Context, voterID, submissionID string, voteType model.VoteType) (*service.CastResult, error) {
	args := m.Called(ctx, voterID, submissionID, voteType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CastResult), args.Error(1)
}

func (m *MockVoteService) Counts(ctx context.Context, submissionID string) (model.VoteCounts, error) {
	args := m.Called(ctx, submissionID)
	return args.Get(0).(model.VoteCounts), args.Error(1)
}

func (m *MockVoteService) NextPair(ctx context.Context, voterID string) (*model.VotePair, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VotePair), args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*service.ProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, in service.ProfileUpdate) (*model.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
