package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	c := ApplyDefaults(Configuration{})

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, 32, c.Security.RefreshCodeLen)
	assert.Equal(t, 30, c.Security.RefreshCodeMaxValid)
	assert.Equal(t, 10, c.Reward.OnValid)
	assert.Equal(t, 0, c.Reward.PenaltyOnInvalid)
	assert.Equal(t, int64(5*1024*1024), c.Upload.MaxFileBytes)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	var c Configuration
	c.ApiPort = "9090"
	c.Reward.OnValid = 25
	c.Reward.PenaltyOnInvalid = 5

	c = ApplyDefaults(c)
	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, 25, c.Reward.OnValid)
	assert.Equal(t, 5, c.Reward.PenaltyOnInvalid)
}

func TestApplyDefaultsRewardDisabled(t *testing.T) {
	// negativo = recompensa explicitamente desligada, não cai no default de 10
	var c Configuration
	c.Reward.OnValid = -1

	c = ApplyDefaults(c)
	assert.Equal(t, 0, c.Reward.OnValid)
}

func TestApplyDefaultsClampsNegativePenalty(t *testing.T) {
	var c Configuration
	c.Reward.PenaltyOnInvalid = -3

	c = ApplyDefaults(c)
	assert.Equal(t, 0, c.Reward.PenaltyOnInvalid)
}
