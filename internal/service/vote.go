package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"brilliantstylist/internal/cache"
	"brilliantstylist/internal/database"
	"brilliantstylist/internal/events"
	"brilliantstylist/internal/logger"
	"brilliantstylist/internal/metrics"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// CastResult is the stored vote and the submission's tally after it.
type CastResult struct {
	Vote   model.Vote       `json:"vote"`
	Counts model.VoteCounts `json:"counts"`
}

// VoteService handles peer ratings. Each voter rates a submission at most once.
type VoteService interface {
	Cast(ctx context.Context, voterID, submissionID string, voteType model.VoteType) (*CastResult, error)
	// Counts tallies a submission; unknown ids yield zero counts.
	Counts(ctx context.Context, submissionID string) (model.VoteCounts, error)
	// NextPair picks a random submission the voter has not rated and does not own.
	NextPair(ctx context.Context, voterID string) (*model.VotePair, error)
}

type voteService struct {
	votes       repository.VoteRepository
	submissions repository.SubmissionRepository
	prompts     repository.PromptRepository
	users       repository.UserRepository
	board       cache.LeaderboardCache
	pub         events.Publisher
	metrics     *metrics.Game
	log         *zap.Logger
}

func NewVoteService(
	votes repository.VoteRepository,
	submissions repository.SubmissionRepository,
	prompts repository.PromptRepository,
	users repository.UserRepository,
	board cache.LeaderboardCache,
	pub events.Publisher,
	m *metrics.Game,
	log *zap.Logger,
) VoteService {
	return &voteService{
		votes:       votes,
		submissions: submissions,
		prompts:     prompts,
		users:       users,
		board:       board,
		pub:         pub,
		metrics:     m,
		log:         log,
	}
}

func (s *voteService) Cast(ctx context.Context, voterID, submissionID string, voteType model.VoteType) (*CastResult, error) {
	if voterID == "" || submissionID == "" {
		return nil, ErrIDRequired
	}
	if !voteType.Valid() {
		return nil, ErrInvalidVote
	}
	if uuid.Validate(submissionID) != nil {
		return nil, ErrNotFound
	}

	sub, err := s.submissions.FindByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sub.UserID == voterID {
		return nil, ErrOwnSubmission
	}

	v, err := s.votes.Create(ctx, &model.Vote{SubmissionID: submissionID, VoterID: voterID, Type: voteType})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("save vote: %w", err)
	}

	counts, err := s.votes.Counts(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}

	s.metrics.VoteCast(string(voteType))

	log := logger.FromContext(ctx, s.log)
	if err := s.board.Invalidate(ctx); err != nil {
		log.Warn("leaderboard cache invalidate failed", zap.Error(err))
	}
	if err := s.pub.Publish(ctx, submissionID, events.Event{
		Type: events.TypeVoteCast,
		Data: v,
	}); err != nil {
		log.Warn("publish event failed",
			zap.String("event_type", events.TypeVoteCast),
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
	}

	return &CastResult{Vote: *v, Counts: counts}, nil
}

func (s *voteService) Counts(ctx context.Context, submissionID string) (model.VoteCounts, error) {
	if submissionID == "" {
		return model.VoteCounts{}, ErrIDRequired
	}
	if uuid.Validate(submissionID) != nil {
		return model.VoteCounts{}, nil
	}
	return s.votes.Counts(ctx, submissionID)
}

func (s *voteService) NextPair(ctx context.Context, voterID string) (*model.VotePair, error) {
	if voterID == "" {
		return nil, ErrIDRequired
	}

	sub, err := s.votes.NextUnvoted(ctx, voterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoPairs
		}
		return nil, err
	}

	pair := &model.VotePair{
		Submission:   *sub,
		Prompt:       model.DefaultPrompt(),
		UploaderName: model.AnonymousName,
		ImageURL:     sub.ImageURL(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.prompts.FindByID(gctx, sub.PromptID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("load prompt: %w", err)
		}
		pair.Prompt = *p
		return nil
	})
	g.Go(func() error {
		p, err := s.users.FindProfile(gctx, sub.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("load uploader: %w", err)
		}
		if p.DisplayName != "" {
			pair.UploaderName = p.DisplayName
		}
		return nil
	})
	g.Go(func() error {
		c, err := s.votes.Counts(gctx, sub.ID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}
		pair.Counts = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pair, nil
}
