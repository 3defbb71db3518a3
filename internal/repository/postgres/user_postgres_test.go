package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brilliantstylist/internal/model"
)

var profileCols = []string{"id", "username", "display_name", "avatar_url", "level", "experience_points", "coins", "created_at", "updated_at"}

func TestUserPostgres_CreateWithProfile(t *testing.T) {
	ctx := context.Background()
	email := faker.Email()
	now := time.Now().UTC()

	t.Run("commits both rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(email, "hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow("user-1", email, "hash", now))
		mock.ExpectExec("INSERT INTO user_profiles").
			WithArgs("user-1", "stylist", "stylist").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewUserPostgres(db)
		u, err := repo.CreateWithProfile(ctx,
			&model.User{Email: email, PasswordHash: "hash"},
			&model.Profile{Username: "stylist", DisplayName: "stylist"},
		)
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, email, u.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when profile insert fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow("user-1", email, "hash", now))
		mock.ExpectExec("INSERT INTO user_profiles").WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		repo := NewUserPostgres(db)
		u, err := repo.CreateWithProfile(ctx, &model.User{Email: email, PasswordHash: "hash"}, &model.Profile{})
		assert.EqualError(t, err, "boom")
		assert.Nil(t, u)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("a@b.io").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow("user-1", "a@b.io", "hash", time.Now()))

		u, err := repo.FindByEmail(ctx, "a@b.io")
		require.NoError(t, err)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("missing@b.io").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "missing@b.io")
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM user_profiles WHERE id = ?").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("user-1", "stylist", "Style Queen", nil, 1, 0, 0, now, now))

	p, err := repo.FindProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Style Queen", p.DisplayName)
	assert.Nil(t, p.AvatarURL)
	assert.Equal(t, 1, p.Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	now := time.Now()
	avatar := "http://localhost:9000/avatars/user-1-avatar"

	t.Run("with avatar", func(t *testing.T) {
		mock.ExpectQuery("UPDATE user_profiles").
			WithArgs("user-1", "New Name", avatar).
			WillReturnRows(sqlmock.NewRows(profileCols).
				AddRow("user-1", "stylist", "New Name", avatar, 1, 0, 0, now, now))

		p, err := repo.UpdateProfile(ctx, "user-1", "New Name", &avatar)
		require.NoError(t, err)
		require.NotNil(t, p.AvatarURL)
		assert.Equal(t, avatar, *p.AvatarURL)
	})

	t.Run("display name only", func(t *testing.T) {
		mock.ExpectQuery("UPDATE user_profiles").
			WithArgs("user-1", "Other", nil).
			WillReturnRows(sqlmock.NewRows(profileCols).
				AddRow("user-1", "stylist", "Other", nil, 1, 0, 0, now, now))

		p, err := repo.UpdateProfile(ctx, "user-1", "Other", nil)
		require.NoError(t, err)
		assert.Equal(t, "Other", p.DisplayName)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
