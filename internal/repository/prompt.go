package repository

import (
	"context"

	"brilliantstylist/internal/model"
)

// PromptRepository reads challenge prompts and manages admin fashion cards.
type PromptRepository interface {
	// Latest returns the most recently created prompt.
	Latest(ctx context.Context) (*model.Prompt, error)
	FindByID(ctx context.Context, id string) (*model.Prompt, error)

	CreateCard(ctx context.Context, card *model.FashionCard) (*model.FashionCard, error)
	// ListCards returns every card, newest first.
	ListCards(ctx context.Context) ([]model.FashionCard, error)
}
