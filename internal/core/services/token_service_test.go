package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habtrack/internal/core/domain"
)

func tokenFixture(t *testing.T) (*TokenService, *stubUserRepo, *domain.User) {
	t.Helper()
	users := newStubUserRepo()

	user, err := domain.NewUser("u1", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))

	return NewTokenService("test-secret", "habtrack-test", time.Hour, users), users, user
}

func TestTokenService_ValidateToken(t *testing.T) {
	t.Run("Success: Round trip returns the subject", func(t *testing.T) {
		svc, _, user := tokenFixture(t)

		token, err := svc.GenerateToken(user.ID)
		require.NoError(t, err)

		subject, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("Error: Garbage token", func(t *testing.T) {
		svc, _, _ := tokenFixture(t)
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Error: Token signed with another secret", func(t *testing.T) {
		svc, users, user := tokenFixture(t)
		other := NewTokenService("other-secret", "habtrack-test", time.Hour, users)

		token, err := other.GenerateToken(user.ID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Wrong issuer", func(t *testing.T) {
		svc, users, user := tokenFixture(t)
		other := NewTokenService("test-secret", "someone-else", time.Hour, users)

		token, err := other.GenerateToken(user.ID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Expired token", func(t *testing.T) {
		users := newStubUserRepo()
		user, err := domain.NewUser("u1", "ada@example.com")
		require.NoError(t, err)
		require.NoError(t, users.Create(context.Background(), user))

		svc := NewTokenService("test-secret", "habtrack-test", -time.Minute, users)
		token, err := svc.GenerateToken(user.ID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Subject no longer exists", func(t *testing.T) {
		svc, _, _ := tokenFixture(t)

		token, err := svc.GenerateToken("deleted-user")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Reset token is rejected as a session token", func(t *testing.T) {
		svc, _, user := tokenFixture(t)

		token, err := svc.GenerateResetToken(user.ID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestTokenService_ValidateResetToken(t *testing.T) {
	t.Run("Success: Reset round trip", func(t *testing.T) {
		svc, _, user := tokenFixture(t)

		token, err := svc.GenerateResetToken(user.ID)
		require.NoError(t, err)

		subject, err := svc.ValidateResetToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("Error: Session token has no reset purpose", func(t *testing.T) {
		svc, _, user := tokenFixture(t)

		token, err := svc.GenerateToken(user.ID)
		require.NoError(t, err)

		_, err = svc.ValidateResetToken(token)
		assert.Error(t, err)
	})
}
