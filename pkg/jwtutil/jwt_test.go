package jwtutil

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsUnexpectedSigningMethod(t *testing.T) {
	claims := &UserClaims{UserID: 1}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorContains(t, err, "unexpected signing method")
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	original := signingKey
	signingKey = []byte("other-key")
	token, err := GenerateToken(1, "")
	require.NoError(t, err)
	signingKey = original

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
