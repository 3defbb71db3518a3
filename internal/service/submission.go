package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brilliantstylist/internal/cache"
	"brilliantstylist/internal/events"
	"brilliantstylist/internal/logger"
	"brilliantstylist/internal/metrics"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
	"brilliantstylist/internal/storage"
)

// UploadInput carries one outfit photo from the multipart form.
type UploadInput struct {
	UserID      string
	PromptID    string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Reveal pairs the player's latest photo with the prompt it answered.
type Reveal struct {
	Prompt     model.Prompt      `json:"prompt"`
	Submission *model.Submission `json:"submission"`
	ImageURL   string            `json:"image_url"`
}

// SubmissionService handles outfit photo uploads and the reveal screen.
type SubmissionService interface {
	// Upload stores the photo, then its row. If the row cannot be saved the object is removed.
	Upload(ctx context.Context, in UploadInput) (*model.Submission, error)
	Reveal(ctx context.Context, userID string) (*Reveal, error)
	ListByUser(ctx context.Context, userID string) ([]model.SubmissionStats, error)
}

type submissionService struct {
	store   storage.Storage
	repo    repository.SubmissionRepository
	prompts repository.PromptRepository
	board   cache.LeaderboardCache
	pub     events.Publisher
	metrics *metrics.Game
	log     *zap.Logger
	now     func() time.Time
}

func NewSubmissionService(
	store storage.Storage,
	repo repository.SubmissionRepository,
	prompts repository.PromptRepository,
	board cache.LeaderboardCache,
	pub events.Publisher,
	m *metrics.Game,
	log *zap.Logger,
) SubmissionService {
	return &submissionService{
		store:   store,
		repo:    repo,
		prompts: prompts,
		board:   board,
		pub:     pub,
		metrics: m,
		log:     log,
		now:     time.Now,
	}
}

// resolvePrompt maps an empty or default id to the current stored prompt.
func (s *submissionService) resolvePrompt(ctx context.Context, id string) (*model.Prompt, error) {
	var (
		p   *model.Prompt
		err error
	)
	switch {
	case id == "" || id == model.DefaultPrompt().ID:
		p, err = s.prompts.Latest(ctx)
	case uuid.Validate(id) != nil:
		return nil, ErrPromptNotFound
	default:
		p, err = s.prompts.FindByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("load prompt: %w", err)
	}
	return p, nil
}

func (s *submissionService) Upload(ctx context.Context, in UploadInput) (*model.Submission, error) {
	if in.Body == nil || in.Size == 0 {
		return nil, ErrFileRequired
	}
	if in.UserID == "" {
		return nil, ErrIDRequired
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, ErrNotAnImage
	}

	prompt, err := s.resolvePrompt(ctx, in.PromptID)
	if err != nil {
		return nil, err
	}

	key := objectKey(in.UserID, s.now(), in.Filename)
	objInfo, err := s.store.Put(ctx, key, in.Body, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Submission{
		UserID:      in.UserID,
		PromptID:    prompt.ID,
		Name:        prompt.Title,
		Description: "Recreation of: " + prompt.Description,
		ImagePath:   objInfo.Key,
		PublicURL:   s.store.PublicURL(objInfo.Key),
	})
	if err != nil {
		// Orphaned object; remove it so the bucket matches the table.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.metrics.SubmissionCreated()

	log := logger.FromContext(ctx, s.log)
	if err := s.board.Invalidate(ctx); err != nil {
		log.Warn("leaderboard cache invalidate failed", zap.Error(err))
	}
	if err := s.pub.Publish(ctx, stored.ID, events.Event{
		Type: events.TypeSubmissionCreated,
		Data: stored,
	}); err != nil {
		log.Warn("publish event failed",
			zap.String("event_type", events.TypeSubmissionCreated),
			zap.String("submission_id", stored.ID),
			zap.Error(err),
		)
	}
	return stored, nil
}

// objectKey builds <userID>-<unixMillis>-<sanitized name>.
func objectKey(userID string, at time.Time, filename string) string {
	return userID + "-" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + sanitizeFilename(filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), ".-")
	if out == "" {
		return "photo"
	}
	return out
}

func (s *submissionService) Reveal(ctx context.Context, userID string) (*Reveal, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}

	sub, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Reveal{Prompt: model.DefaultPrompt(), ImageURL: model.PlaceholderImage}, nil
		}
		return nil, err
	}

	prompt := model.DefaultPrompt()
	p, err := s.prompts.FindByID(ctx, sub.PromptID)
	switch {
	case err == nil:
		prompt = *p
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	return &Reveal{Prompt: prompt, Submission: sub, ImageURL: sub.ImageURL()}, nil
}

func (s *submissionService) ListByUser(ctx context.Context, userID string) ([]model.SubmissionStats, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByUserWithCounts(ctx, userID)
}
