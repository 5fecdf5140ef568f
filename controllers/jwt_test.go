package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, err := signAccessToken(42, "user@test.com", now, now.Add(time.Hour))
	require.NoError(t, err)

	id, err := parseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestAccessTokenExpired(t *testing.T) {
	now := time.Now()
	token, err := signAccessToken(42, "user@test.com", now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	_, err = parseAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenTampered(t *testing.T) {
	now := time.Now()
	token, err := signAccessToken(42, "user@test.com", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = parseAccessToken(token + "x")
	assert.Error(t, err)

	_, err = parseAccessToken("clearly.not.ajwt")
	assert.Error(t, err)
}
