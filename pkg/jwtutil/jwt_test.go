package jwtutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkmezza/auth-service/internal/domain"
)

func newTestUtil(key string, hours int) *JWTUtil {
	return NewJWTUtil(&JWTConfig{SigningKey: key, ExpirationHours: hours})
}

func TestGenerateAndValidateToken(t *testing.T) {
	j := newTestUtil("test-signing-key", 1)

	token, err := j.GenerateToken("alice@example.com", "user", "8a6e0804-2bd0-4672-b79d-d97027f9071a")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "8a6e0804-2bd0-4672-b79d-d97027f9071a", claims.UserID)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateTokenExpired(t *testing.T) {
	j := newTestUtil("test-signing-key", -1)

	token, err := j.GenerateToken("alice@example.com", "user", "id")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.False(t, j.IsValid(token))
}

func TestValidateTokenTampered(t *testing.T) {
	j := newTestUtil("test-signing-key", 1)

	token, err := j.GenerateToken("alice@example.com", "user", "id")
	require.NoError(t, err)

	// Flip a byte in the signature segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = j.ValidateToken(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer := newTestUtil("key-one", 1)
	verifier := newTestUtil("key-two", 1)

	token, err := issuer.GenerateToken("alice@example.com", "user", "id")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenMalformed(t *testing.T) {
	j := newTestUtil("test-signing-key", 1)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := j.ValidateToken(input)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, "input %q", input)
	}
}

func TestExtractClaims(t *testing.T) {
	j := newTestUtil("test-signing-key", 1)

	token, err := j.GenerateToken("bob@example.com", "admin", "user-42")
	require.NoError(t, err)

	email, err := j.ExtractEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", email)

	userID, err := j.ExtractUserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	assert.True(t, j.IsValid(token))

	// Accessors verify before reading claims
	_, err = j.ExtractEmail("not-a-token")
	assert.Error(t, err)
	_, err = j.ExtractUserID("not-a-token")
	assert.Error(t, err)
}
