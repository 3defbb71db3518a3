package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"brilliantstylist/internal/model"
)

// leaderboardKey is a hash whose fields are the requested board sizes.
// Deleting it drops every cached size at once. Its TTL is set by the first
// write only, so no size outlives the oldest one.
const leaderboardKey = "leaderboard:top"

// LeaderboardCache stores ranked leaderboards between votes.
type LeaderboardCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, n int) (entries []model.LeaderboardEntry, ok bool, err error)
	Set(ctx context.Context, n int, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type RedisLeaderboard struct {
	R   *redis.Client
	TTL time.Duration
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (c *RedisLeaderboard) Get(ctx context.Context, n int) ([]model.LeaderboardEntry, bool, error) {
	b, err := c.R.HGet(ctx, leaderboardKey, strconv.Itoa(n)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *RedisLeaderboard) Set(ctx context.Context, n int, entries []model.LeaderboardEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = c.R.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, leaderboardKey, strconv.Itoa(n), b)
		p.ExpireNX(ctx, leaderboardKey, c.TTL)
		return nil
	})
	return err
}

func (c *RedisLeaderboard) Invalidate(ctx context.Context) error {
	return c.R.Del(ctx, leaderboardKey).Err()
}

// Noop never hits. Used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, int) ([]model.LeaderboardEntry, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, int, []model.LeaderboardEntry) error         { return nil }
func (Noop) Invalidate(context.Context) error                                 { return nil }
