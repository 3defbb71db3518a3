package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"brilliantstylist/internal/cache"
	"brilliantstylist/internal/logger"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

const maxLeaderboardSize = 100

// LeaderboardService ranks submissions by brilliant votes.
type LeaderboardService interface {
	// Top returns at most n entries; n <= 0 selects the configured default.
	Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error)
}

type leaderboardService struct {
	votes       repository.VoteRepository
	board       cache.LeaderboardCache
	defaultSize int
	log         *zap.Logger
}

func NewLeaderboardService(votes repository.VoteRepository, board cache.LeaderboardCache, defaultSize int, log *zap.Logger) LeaderboardService {
	if defaultSize <= 0 {
		defaultSize = 20
	}
	return &leaderboardService{votes: votes, board: board, defaultSize: defaultSize, log: log}
}

func (s *leaderboardService) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	if n <= 0 {
		n = s.defaultSize
	}
	if n > maxLeaderboardSize {
		n = maxLeaderboardSize
	}

	log := logger.FromContext(ctx, s.log)
	if entries, ok, err := s.board.Get(ctx, n); err != nil {
		log.Warn("leaderboard cache read failed", zap.Error(err))
	} else if ok {
		return entries, nil
	}

	rows, err := s.votes.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	entries := Rank(rows, n)

	if err := s.board.Set(ctx, n, entries); err != nil {
		log.Warn("leaderboard cache write failed", zap.Error(err))
	}
	return entries, nil
}

// Rank sorts by brilliant votes, highest first, keeping the input order for ties,
// then keeps the first n and numbers them from 1.
func Rank(rows []model.LeaderboardEntry, n int) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BrilliantVotes > out[j].BrilliantVotes
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = i + 1
		if out[i].DisplayName == "" {
			out[i].DisplayName = model.AnonymousName
		}
	}
	return out
}
