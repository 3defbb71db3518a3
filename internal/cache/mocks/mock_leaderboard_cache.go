package mocks

import (
	"context"

	"brilliantstylist/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context, n int) ([]model.LeaderboardEntry, bool, error) {
	args := m.Called(ctx, n)
	var entries []model.LeaderboardEntry
	if v := args.Get(0); v != nil {
		entries = v.([]model.LeaderboardEntry)
	}
	return entries, args.Bool(1), args.Error(2)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, n int, entries []model.LeaderboardEntry) error {
	args := m.Called(ctx, n, entries)
	return args.Error(0)
}

func (m *MockLeaderboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
