package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, "configs", cfg.ConfigDir)
		assert.Equal(t, "itemforge", cfg.ServiceName)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CONFIG_DIR", "/etc/itemforge")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/etc/itemforge", cfg.ConfigDir)
	})

	t.Run("invalid port fails", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT")
	})
}
