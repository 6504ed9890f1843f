package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.OpenSession()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.SessionID, "sess_"))
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID)
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc := NewAuthService("test-secret")

	a, err := svc.OpenSession()
	require.NoError(t, err)
	b, err := svc.OpenSession()
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	resp, err := NewAuthService("secret-one").OpenSession()
	require.NoError(t, err)

	_, err = NewAuthService("secret-two").ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
