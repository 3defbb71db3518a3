package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// CardInput is the admin form for a new fashion card.
type CardInput struct {
	Title            string `json:"title"`
	ImageURL         string `json:"image_url"`
	Designer         string `json:"designer"`
	Brand            string `json:"brand"`
	StyleDescription string `json:"style_description"`
}

// PromptService serves challenge prompts and admin-curated fashion cards.
type PromptService interface {
	// Current returns the newest prompt, or the built-in default when none is stored.
	Current(ctx context.Context) (*model.Prompt, error)
	Get(ctx context.Context, id string) (*model.Prompt, error)
	CreateCard(ctx context.Context, in CardInput) (*model.FashionCard, error)
	ListCards(ctx context.Context) ([]model.FashionCard, error)
}

type promptService struct {
	repo repository.PromptRepository
}

func NewPromptService(repo repository.PromptRepository) PromptService {
	return &promptService{repo: repo}
}

func (s *promptService) Current(ctx context.Context) (*model.Prompt, error) {
	p, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			d := model.DefaultPrompt()
			return &d, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *promptService) Get(ctx context.Context, id string) (*model.Prompt, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if id == model.DefaultPrompt().ID {
		d := model.DefaultPrompt()
		return &d, nil
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *promptService) CreateCard(ctx context.Context, in CardInput) (*model.FashionCard, error) {
	card := &model.FashionCard{
		Title:            strings.TrimSpace(in.Title),
		ImageURL:         strings.TrimSpace(in.ImageURL),
		Designer:         strings.TrimSpace(in.Designer),
		Brand:            strings.TrimSpace(in.Brand),
		StyleDescription: strings.TrimSpace(in.StyleDescription),
	}
	if card.Title == "" || card.Designer == "" || card.Brand == "" || card.StyleDescription == "" {
		return nil, ErrInvalidCard
	}
	if u, err := url.Parse(card.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidCard
	}

	out, err := s.repo.CreateCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return out, nil
}

func (s *promptService) ListCards(ctx context.Context) ([]model.FashionCard, error) {
	return s.repo.ListCards(ctx)
}
