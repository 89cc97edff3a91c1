package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	token, err := service.Issue(42, "alice", "qa_tester")
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "qa_tester", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue(1, "alice", "admin")
	require.NoError(t, err)
	_, err = NewTokenService("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := NewTokenService("test-secret", -time.Minute).Issue(1, "alice", "admin")
	require.NoError(t, err)
	_, err = NewTokenService("test-secret", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret", time.Hour).Verify("not.a.token")
	assert.Error(t, err)
}
