package mocks

import (
	"context"

	"brilliantstylist/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Latest(ctx context.Context) (*model.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptRepository) FindByID(ctx context.Context, id string) (*model.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptRepository) CreateCard(ctx context.Context, card *model.FashionCard) (*model.FashionCard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FashionCard), args.Error(1)
}

func (m *MockPromptRepository) ListCards(ctx context.Context) ([]model.FashionCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FashionCard), args.Error(1)
}
