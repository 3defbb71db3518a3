package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cacheMocks "brilliantstylist/internal/cache/mocks"
	"brilliantstylist/internal/model"
	repoMocks "brilliantstylist/internal/repository/mocks"
)

func entry(id string, brilliant int, name string) model.LeaderboardEntry {
	return model.LeaderboardEntry{SubmissionID: id, BrilliantVotes: brilliant, DisplayName: name}
}

func TestRank(t *testing.T) {
	rows := []model.LeaderboardEntry{
		entry("a", 1, "Ann"),
		entry("b", 5, ""),
		entry("c", 3, "Cy"),
		entry("d", 5, "Dee"),
		entry("e", 0, "Eve"),
	}

	out := Rank(rows, 20)
	require.Len(t, out, 5)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].BrilliantVotes, out[i].BrilliantVotes, "leaderboard must be non-increasing")
	}
	ids := []string{}
	for i, e := range out {
		ids = append(ids, e.SubmissionID)
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, []string{"b", "d", "c", "a", "e"}, ids, "ties keep input order")
	assert.Equal(t, model.AnonymousName, out[0].DisplayName)

	assert.Equal(t, "a", rows[0].SubmissionID, "input is not reordered")
	assert.Equal(t, 0, rows[1].Rank)
}

func TestRank_Truncates(t *testing.T) {
	rows := make([]model.LeaderboardEntry, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, entry(string(rune('A'+i)), i%7, "x"))
	}
	out := Rank(rows, 20)
	assert.Len(t, out, 20)
	assert.Equal(t, 6, out[0].BrilliantVotes)
	assert.Equal(t, 20, out[19].Rank)

	assert.Empty(t, Rank(nil, 20))
}

func TestLeaderboardService_Top(t *testing.T) {
	ctx := context.Background()
	rows := []model.LeaderboardEntry{entry("a", 1, "Ann"), entry("b", 9, "Bo")}

	t.Run("cache hit", func(t *testing.T) {
		mVotes := new(repoMocks.MockVoteRepository)
		mCache := new(cacheMocks.MockLeaderboardCache)
		cached := []model.LeaderboardEntry{{Rank: 1, SubmissionID: "z"}}
		mCache.On("Get", ctx, 20).Return(cached, true, nil)

		out, err := NewLeaderboardService(mVotes, mCache, 20, zap.NewNop()).Top(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, cached, out)
		mVotes.AssertExpectations(t)
		mCache.AssertExpectations(t)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		mVotes := new(repoMocks.MockVoteRepository)
		mCache := new(cacheMocks.MockLeaderboardCache)
		mCache.On("Get", ctx, 5).Return(nil, false, nil)
		mVotes.On("Leaderboard", ctx).Return(rows, nil)
		mCache.On("Set", ctx, 5, mock.MatchedBy(func(e []model.LeaderboardEntry) bool {
			return len(e) == 2 && e[0].SubmissionID == "b"
		})).Return(nil)

		out, err := NewLeaderboardService(mVotes, mCache, 20, zap.NewNop()).Top(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "b", out[0].SubmissionID)
		mVotes.AssertExpectations(t)
		mCache.AssertExpectations(t)
	})

	t.Run("cache errors are ignored", func(t *testing.T) {
		mVotes := new(repoMocks.MockVoteRepository)
		mCache := new(cacheMocks.MockLeaderboardCache)
		mCache.On("Get", ctx, maxLeaderboardSize).Return(nil, false, errors.New("redis down"))
		mVotes.On("Leaderboard", ctx).Return(rows, nil)
		mCache.On("Set", ctx, maxLeaderboardSize, mock.Anything).Return(errors.New("redis down"))

		out, err := NewLeaderboardService(mVotes, mCache, 20, zap.NewNop()).Top(ctx, 1000)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		mVotes := new(repoMocks.MockVoteRepository)
		mCache := new(cacheMocks.MockLeaderboardCache)
		mCache.On("Get", ctx, 20).Return(nil, false, nil)
		mVotes.On("Leaderboard", ctx).Return(nil, errors.New("db down"))

		_, err := NewLeaderboardService(mVotes, mCache, 0, zap.NewNop()).Top(ctx, -1)
		assert.EqualError(t, err, "db down")
	})
}

func TestLeaderboard_NonIncreasingProperty(t *testing.T) {
	seed := time.Now().UnixNano()
	rows := make([]model.LeaderboardEntry, 0, 200)
	x := uint64(seed)
	for i := 0; i < 200; i++ {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		rows = append(rows, entry("s", int(x%50), ""))
	}
	out := Rank(rows, 200)
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i-1].BrilliantVotes, out[i].BrilliantVotes, "seed %d", seed)
	}
}
