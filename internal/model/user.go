package model

import "time"

// User is an authenticated account. PasswordHash never leaves the service layer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public, game-facing side of a user.
type Profile struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	DisplayName      string    `json:"display_name"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	Level            int       `json:"level"`
	ExperiencePoints int       `json:"experience_points"`
	Coins            int       `json:"coins"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
