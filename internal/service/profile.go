package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"brilliantstylist/internal/cache"
	"brilliantstylist/internal/imaging"
	"brilliantstylist/internal/logger"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
	"brilliantstylist/internal/storage"
)

const (
	maxDisplayNameLen = 50
	// minutesPerOutfit is the time credited for each uploaded outfit.
	minutesPerOutfit = 3
)

// ProfileStats summarises a player's submissions.
type ProfileStats struct {
	TotalOutfits      int                    `json:"total_outfits"`
	TotalVotes        int                    `json:"total_votes"`
	MostVoted         *model.SubmissionStats `json:"most_voted"`
	TimePlayedMinutes int                    `json:"time_played_minutes"`
}

// ProfileView is everything the profile screen shows.
type ProfileView struct {
	Profile     model.Profile           `json:"profile"`
	Submissions []model.SubmissionStats `json:"submissions"`
	Stats       ProfileStats            `json:"stats"`
}

// ProfileUpdate changes the display name and optionally replaces the avatar.
type ProfileUpdate struct {
	DisplayName string
	Avatar      io.Reader
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*ProfileView, error)
	Update(ctx context.Context, userID string, in ProfileUpdate) (*model.Profile, error)
}

type profileService struct {
	users       repository.UserRepository
	submissions repository.SubmissionRepository
	avatars     storage.Storage
	board       cache.LeaderboardCache
	log         *zap.Logger
	now         func() time.Time
}

func NewProfileService(
	users repository.UserRepository,
	submissions repository.SubmissionRepository,
	avatars storage.Storage,
	board cache.LeaderboardCache,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		users:       users,
		submissions: submissions,
		avatars:     avatars,
		board:       board,
		log:         log,
		now:         time.Now,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*ProfileView, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}

	var (
		profile *model.Profile
		subs    []model.SubmissionStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.users.FindProfile(gctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		var err error
		subs, err = s.submissions.ListByUserWithCounts(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ProfileView{
		Profile:     *profile,
		Submissions: subs,
		Stats:       Summarize(subs),
	}, nil
}

// Summarize totals the votes across subs and picks the most voted one.
// A later submission only replaces the current pick when its total is strictly greater,
// so ties go to the earlier entry and all-zero totals leave MostVoted nil.
func Summarize(subs []model.SubmissionStats) ProfileStats {
	st := ProfileStats{
		TotalOutfits:      len(subs),
		TimePlayedMinutes: len(subs) * minutesPerOutfit,
	}
	maxVotes := 0
	for i := range subs {
		total := subs[i].Counts.Total()
		st.TotalVotes += total
		if total > maxVotes {
			maxVotes = total
			st.MostVoted = &subs[i]
		}
	}
	return st
}

func normalizeDisplayName(name string) (string, error) {
	name = strings.TrimSpace(norm.NFC.String(name))
	if n := utf8.RuneCountInString(name); n < 1 || n > maxDisplayNameLen {
		return "", ErrInvalidDisplayName
	}
	return name, nil
}

// Update stores a new avatar under a fresh key so cached copies of the old URL
// are never served for the new image. The previous object is removed once the
// profile row points at the new one.
func (s *profileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	name, err := normalizeDisplayName(in.DisplayName)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx, s.log)

	var (
		avatarURL *string
		newKey    string
		oldKey    string
	)
	if in.Avatar != nil {
		img, err := imaging.NormalizeAvatar(in.Avatar)
		if err != nil {
			return nil, err
		}

		current, err := s.users.FindProfile(ctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("load profile: %w", err)
		}
		oldKey = s.avatarKey(current.AvatarURL)

		newKey = userID + "-avatar-" + strconv.FormatInt(s.now().UnixMilli(), 10)
		if _, err := s.avatars.Put(ctx, newKey, bytes.NewReader(img), storage.PutObjectOptions{
			Size:        int64(len(img)),
			ContentType: "image/jpeg",
		}); err != nil {
			return nil, fmt.Errorf("upload avatar: %w", err)
		}
		u := s.avatars.PublicURL(newKey)
		avatarURL = &u
	}

	p, err := s.users.UpdateProfile(ctx, userID, name, avatarURL)
	if err != nil {
		if newKey != "" {
			if delErr := s.avatars.Delete(ctx, newKey); delErr != nil {
				log.Warn("avatar rollback failed", zap.String("key", newKey), zap.Error(delErr))
			}
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if oldKey != "" && oldKey != newKey {
		if err := s.avatars.Delete(ctx, oldKey); err != nil {
			log.Warn("old avatar delete failed", zap.String("key", oldKey), zap.Error(err))
		}
	}
	if err := s.board.Invalidate(ctx); err != nil {
		log.Warn("leaderboard cache invalidate failed", zap.Error(err))
	}
	return p, nil
}

// avatarKey recovers the object key from a URL this bucket handed out.
// Foreign or missing URLs yield "".
func (s *profileService) avatarKey(avatarURL *string) string {
	if avatarURL == nil {
		return ""
	}
	rest, ok := strings.CutPrefix(*avatarURL, s.avatars.PublicURL(""))
	if !ok || rest == "" {
		return ""
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return ""
	}
	return key
}
