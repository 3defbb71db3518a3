package postgres

import (
	"context"
	"database/sql"

	"brilliantstylist/internal/database"
	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const profileColumns = `id, username, display_name, avatar_url, level, experience_points, coins, created_at, updated_at`

// CreateWithProfile inserts a users row and its user_profiles row atomically.
func (r *UserPostgres) CreateWithProfile(ctx context.Context, u *model.User, p *model.Profile) (*model.User, error) {
	var out model.User
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		const qUser = `
			INSERT INTO users (email, password_hash)
			VALUES ($1, $2)
			RETURNING id, email, password_hash, created_at
		`
		if err := tx.QueryRowContext(ctx, qUser, u.Email, u.PasswordHash).
			Scan(&out.ID, &out.Email, &out.PasswordHash, &out.CreatedAt); err != nil {
			return err
		}

		const qProfile = `
			INSERT INTO user_profiles (id, username, display_name)
			VALUES ($1, $2, $3)
		`
		_, err := tx.ExecContext(ctx, qProfile, out.ID, p.Username, p.DisplayName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserPostgres) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserPostgres) FindProfile(ctx context.Context, userID string) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, userID))
}

// UpdateProfile keeps the stored avatar when avatarURL is nil.
func (r *UserPostgres) UpdateProfile(ctx context.Context, userID, displayName string, avatarURL *string) (*model.Profile, error) {
	const q = `
		UPDATE user_profiles
		SET display_name = $2,
		    avatar_url   = COALESCE($3, avatar_url),
		    updated_at   = now()
		WHERE id = $1
		RETURNING ` + profileColumns
	var avatar sql.NullString
	if avatarURL != nil {
		avatar = sql.NullString{String: *avatarURL, Valid: true}
	}
	return scanProfile(r.db.QueryRowContext(ctx, q, userID, displayName, avatar))
}

func scanProfile(row *sql.Row) (*model.Profile, error) {
	var (
		p      model.Profile
		avatar sql.NullString
	)
	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.DisplayName,
		&avatar,
		&p.Level,
		&p.ExperiencePoints,
		&p.Coins,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.AvatarURL = nullableString(avatar)
	return &p, nil
}
