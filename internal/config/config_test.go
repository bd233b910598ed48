package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Oracle.URL)
	assert.Equal(t, "artifacts", cfg.Oracle.Artifacts)
	assert.Equal(t, "full", cfg.Chat.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOSPITAL_SERVER_PORT", "9090")
	t.Setenv("HOSPITAL_DATABASE_URL", "sqlite://hospital.db")
	t.Setenv("HOSPITAL_CHAT_MODE", "quick")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite://hospital.db", cfg.Database.URL)
	assert.Equal(t, "quick", cfg.Chat.Mode)
	assert.Equal(t, "info", cfg.Log.Level, "untouched keys keep their defaults")
}
