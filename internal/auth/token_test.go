package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "jane@example.com", "", "CUSTOMER")
	require.NoError(t, err)

	claims, err := ParseToken(token, AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.Empty(t, claims.Phone)
}

func TestTokenKindsUseSeparateSecrets(t *testing.T) {
	access, err := GenerateAccessToken("user-1", "", "+15551234567", "ADMIN")
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken("user-1", "", "+15551234567", "ADMIN")
	require.NoError(t, err)

	// A token only parses against its own kind.
	_, err = ParseToken(access, RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken(refresh, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(access, AccessToken)
	assert.NoError(t, err)
	_, err = ParseToken(refresh, RefreshToken)
	assert.NoError(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("", RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "", "", "CUSTOMER")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
