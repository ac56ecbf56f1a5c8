package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, TokenExpired(tokenWithExp(t, now.Add(-time.Minute)), now))
	assert.False(t, TokenExpired(tokenWithExp(t, now.Add(time.Minute)), now))
}

func TestTokenWithoutExpClaimIsNotExpired(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.False(t, TokenExpired(s, time.Now()))
}

func TestMalformedTokenIsLeftForServer(t *testing.T) {
	assert.False(t, TokenExpired("garbage", time.Now()))
	assert.False(t, TokenExpired("", time.Now()))
}
