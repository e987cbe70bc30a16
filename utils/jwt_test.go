package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token + "x")
	assert.Error(t, err)
}
