package repository

import (
	"context"

	"brilliantstylist/internal/model"
)

// UserRepository persists accounts and their game profiles.
type UserRepository interface {
	// CreateWithProfile inserts the user and its profile row in one transaction.
	// A duplicate email surfaces as a unique violation from the driver.
	CreateWithProfile(ctx context.Context, u *model.User, p *model.Profile) (*model.User, error)

	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)

	FindProfile(ctx context.Context, userID string) (*model.Profile, error)

	// UpdateProfile sets display_name and, when avatarURL is non-nil, avatar_url.
	UpdateProfile(ctx context.Context, userID, displayName string, avatarURL *string) (*model.Profile, error)
}
