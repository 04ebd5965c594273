package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken("secret", "operator@example.com", time.Hour)
	require.NoError(t, err)

	email, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "operator@example.com", email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := NewToken("secret", "operator@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := NewToken("secret", "operator@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}
