package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No config file in a temp dir: defaults apply
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "data/datacash.json", cfg.Storage.File.Path)

	assert.Equal(t, int64(50), cfg.Rewards.SignupBonus)
	assert.Equal(t, int64(40), cfg.Rewards.ReferralBonus)
	assert.Equal(t, int64(500), cfg.Rewards.SellReward)
	assert.Equal(t, 4, cfg.Rewards.DailySellCap)
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{
		Host: "localhost", Port: 5432,
		User: "datacash", Password: "pw", Name: "datacash",
	}
	assert.Equal(t,
		"postgres://datacash:pw@localhost:5432/datacash?sslmode=disable",
		p.DSN())
}
