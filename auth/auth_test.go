package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	token, claims, err := tm.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, time.Minute)

	verified, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", verified.UserID)
	assert.Equal(t, claims.ID, verified.ID)
}

func TestTokenRejections(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	tm := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return now })

	token, _, err := tm.Issue("user-1")
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := tm.Verify("")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := tm.Verify("not.a.token")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour).WithClock(func() time.Time { return now })
		_, err := other.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.Verify(unsigned)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		now = start.Add(2 * time.Hour)
		defer func() { now = start }()

		_, err := tm.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestClaimsTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return now })

	_, claims, err := tm.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, claims.TTL(now.Add(30*time.Minute)))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	ok, err := ComparePassword(hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ComparePassword("garbage", "hunter2")
	assert.Error(t, err)
}
