package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("64f0c0ffee0000000000abcd", "ada@example.com")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee0000000000abcd", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestParseJWTRejectsForeignKey(t *testing.T) {
	JwtKey = []byte("one")
	token, err := GenerateJWT("u", "ada@example.com")
	require.NoError(t, err)

	JwtKey = []byte("two")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
