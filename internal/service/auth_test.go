package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brilliantstylist/internal/auth"
	"brilliantstylist/internal/model"
	repoMocks "brilliantstylist/internal/repository/mocks"
)

type stubTokens struct {
	token string
	exp   time.Time
	err   error
}

func (s stubTokens) Generate(string) (string, time.Time, error) { return s.token, s.exp, s.err }

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(m *repoMocks.MockUserRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:     "happy path",
			email:    "  Stylist@Example.COM ",
			password: "hunter22",
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("CreateWithProfile", ctx,
					mock.MatchedBy(func(u *model.User) bool {
						return u.Email == "stylist@example.com" && auth.ComparePassword(u.PasswordHash, "hunter22") == nil
					}),
					mock.MatchedBy(func(p *model.Profile) bool {
						return p.Username == "stylist" && p.DisplayName == "stylist"
					}),
				).Return(&model.User{ID: "user-1", Email: "stylist@example.com"}, nil)
			},
		},
		{
			name:       "invalid email",
			email:      "not-an-email",
			password:   "hunter22",
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidEmail,
		},
		{
			name:       "display form rejected",
			email:      "Bob <bob@example.com>",
			password:   "hunter22",
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidEmail,
		},
		{
			name:       "password too short",
			email:      faker.Email(),
			password:   "12345",
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidPassword,
		},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "hunter22",
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
					Return(nil, &pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:     "repository error",
			email:    "x@example.com",
			password: "hunter22",
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
					Return(nil, errors.New("db down"))
			},
			wantErrMsg: "create user: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)
			svc := NewAuthService(mRepo, stubTokens{})

			u, err := svc.SignUp(ctx, tt.email, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "user-1", u.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	exp := time.Now().Add(time.Hour)
	user := &model.User{ID: "user-1", Email: "stylist@example.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "stylist@example.com").Return(user, nil)
		svc := NewAuthService(mRepo, stubTokens{token: "tok", exp: exp})

		s, err := svc.SignIn(ctx, "Stylist@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "tok", s.AccessToken)
		assert.Equal(t, "Bearer", s.TokenType)
		assert.Equal(t, exp, s.ExpiresAt)
		assert.Equal(t, "user-1", s.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "stylist@example.com").Return(user, nil)
		svc := NewAuthService(mRepo, stubTokens{token: "tok"})

		_, err := svc.SignIn(ctx, "stylist@example.com", "nope-nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)
		svc := NewAuthService(mRepo, stubTokens{})

		_, err := svc.SignIn(ctx, "ghost@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token error", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "stylist@example.com").Return(user, nil)
		svc := NewAuthService(mRepo, stubTokens{err: errors.New("sign failed")})

		_, err := svc.SignIn(ctx, "stylist@example.com", "hunter22")
		assert.EqualError(t, err, "sign failed")
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("with profile", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		mRepo.On("FindProfile", ctx, "user-1").Return(&model.Profile{ID: "user-1", DisplayName: "Style Queen"}, nil)

		me, err := NewAuthService(mRepo, stubTokens{}).CurrentUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Style Queen", me.Profile.DisplayName)
	})

	t.Run("missing user", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByID", ctx, "gone").Return(nil, sql.ErrNoRows)

		_, err := NewAuthService(mRepo, stubTokens{}).CurrentUser(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewAuthService(new(repoMocks.MockUserRepository), stubTokens{}).CurrentUser(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}
