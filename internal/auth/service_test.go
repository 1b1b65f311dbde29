package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.MinCost)
	require.NoError(t, err)

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	return NewService("admin", string(hash), issuer)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.Login("admin", "Password@123")
	require.NoError(t, err)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	s := newTestService(t)

	_, err := s.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("root", "Password@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
