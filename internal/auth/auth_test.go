package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-pw"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestTokens(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tk := NewTokens("test-secret", "brilliant-stylist", time.Hour)
	tk.now = func() time.Time { return fixed }

	token, exp, err := tk.Generate("user-1")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), exp)

	t.Run("valid", func(t *testing.T) {
		sub, err := tk.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", sub)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokens("test-secret", "brilliant-stylist", time.Hour)
		later.now = func() time.Time { return fixed.Add(2 * time.Hour) }
		_, err := later.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokens("other-secret", "brilliant-stylist", time.Hour)
		other.now = tk.now
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokens("test-secret", "someone-else", time.Hour)
		other.now = tk.now
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "brilliant-stylist",
			ExpiresAt: jwt.NewNumericDate(fixed.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tk.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tk.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
