package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "auctor", cfg.AppName)
	require.Equal(t, "auctor", cfg.Database.Name)
	require.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	require.NotEmpty(t, cfg.Database.URL)
	require.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("POSTGRES_DATABASE", "auctor_other")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9999", cfg.Address())
	require.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	require.Contains(t, cfg.Database.URL, "auctor_other")
}
