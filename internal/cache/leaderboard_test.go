package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brilliantstylist/internal/model"
)

func newRedisLeaderboard(t *testing.T, ttl time.Duration) (*RedisLeaderboard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cli := NewClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cli.Close() })
	return &RedisLeaderboard{R: cli, TTL: ttl}, mr
}

func sampleBoard() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{Rank: 1, SubmissionID: "s-2", UserID: "u-2", DisplayName: "Mina", BrilliantVotes: 4, CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{Rank: 2, SubmissionID: "s-1", UserID: "u-1", DisplayName: "Anonymous", BrilliantVotes: 1, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}
}

func TestRedisLeaderboard_MissReturnsNotOK(t *testing.T) {
	c, _ := newRedisLeaderboard(t, time.Minute)

	entries, ok, err := c.Get(context.Background(), 20)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, entries)
}

func TestRedisLeaderboard_SetGet(t *testing.T) {
	c, mr := newRedisLeaderboard(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 20, sampleBoard()))
	require.NoError(t, c.Set(ctx, 5, sampleBoard()[:1]))

	got, ok, err := c.Get(ctx, 20)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleBoard(), got)

	got, ok, err = c.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, ok, err = c.Get(ctx, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	fields, err := mr.HKeys(leaderboardKey)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"20", "5"}, fields)
	assert.Equal(t, 30*time.Second, mr.TTL(leaderboardKey))
}

func TestRedisLeaderboard_Expires(t *testing.T) {
	c, mr := newRedisLeaderboard(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 20, sampleBoard()))
	mr.FastForward(31 * time.Second)

	_, ok, err := c.Get(ctx, 20)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLeaderboard_LaterSetKeepsFirstTTL(t *testing.T) {
	c, mr := newRedisLeaderboard(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 20, sampleBoard()))
	mr.FastForward(20 * time.Second)
	require.NoError(t, c.Set(ctx, 5, sampleBoard()[:1]))
	assert.Equal(t, 10*time.Second, mr.TTL(leaderboardKey))

	mr.FastForward(11 * time.Second)
	for _, n := range []int{5, 20} {
		_, ok, err := c.Get(ctx, n)
		require.NoError(t, err)
		assert.False(t, ok, "size %d outlived the first write", n)
	}
}

func TestRedisLeaderboard_InvalidateDropsEverySize(t *testing.T) {
	c, mr := newRedisLeaderboard(t, time.Minute)
	ctx := context.Background()

	for _, n := range []int{5, 20, 100} {
		require.NoError(t, c.Set(ctx, n, sampleBoard()))
	}
	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, mr.Exists(leaderboardKey))
	for _, n := range []int{5, 20, 100} {
		_, ok, err := c.Get(ctx, n)
		require.NoError(t, err)
		assert.False(t, ok, "size %d still cached", n)
	}
}

func TestRedisLeaderboard_CorruptPayload(t *testing.T) {
	c, mr := newRedisLeaderboard(t, time.Minute)
	mr.HSet(leaderboardKey, "20", "{not json")

	_, ok, err := c.Get(context.Background(), 20)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	var c LeaderboardCache = Noop{}
	ctx := context.Background()

	entries, ok, err := c.Get(ctx, 20)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, entries)
	assert.NoError(t, c.Set(ctx, 20, nil))
	assert.NoError(t, c.Invalidate(ctx))
}

func TestRedisLeaderboard_Unreachable(t *testing.T) {
	c := &RedisLeaderboard{
		R: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		}),
		TTL: time.Minute,
	}
	defer c.R.Close()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, 20)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, 20, nil))
	assert.Error(t, c.Invalidate(ctx))
}

func TestNewClient(t *testing.T) {
	cli := NewClient("localhost:6379", "pw", 2)
	defer cli.Close()
	assert.Equal(t, "localhost:6379", cli.Options().Addr)
	assert.Equal(t, 2, cli.Options().DB)
}
