package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JKOPAY_STORE_ID", "store-1")
	t.Setenv("JKOPAY_API_KEY", "api-key")
	t.Setenv("JKOPAY_SECRET_KEY", "secret")
	t.Setenv("JKOPAY_SANDBOX", "")
	t.Setenv("JKOPAY_BASE_URL", "")
	t.Setenv("APP_ENV", "test")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		setEnv(t)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "store-1", cfg.StoreID)
		assert.Equal(t, "api-key", cfg.APIKey)
		assert.Equal(t, "secret", cfg.SecretKey)
		assert.True(t, cfg.Sandbox)
		assert.Equal(t, "", cfg.BaseURL)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Production flag", func(t *testing.T) {
		setEnv(t)
		t.Setenv("JKOPAY_SANDBOX", "false")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.False(t, cfg.Sandbox)
	})

	t.Run("Invalid sandbox flag", func(t *testing.T) {
		setEnv(t)
		t.Setenv("JKOPAY_SANDBOX", "maybe")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JKOPAY_SANDBOX")
	})

	t.Run("Missing credentials", func(t *testing.T) {
		setEnv(t)
		t.Setenv("JKOPAY_API_KEY", "")
		t.Setenv("JKOPAY_SECRET_KEY", "")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JKOPAY_API_KEY (required)")
		assert.Contains(t, err.Error(), "JKOPAY_SECRET_KEY (required)")
		assert.NotContains(t, err.Error(), "JKOPAY_STORE_ID")
	})

	t.Run("Invalid base URL", func(t *testing.T) {
		setEnv(t)
		t.Setenv("JKOPAY_BASE_URL", "not a url")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JKOPAY_BASE_URL (url)")
	})

	t.Run("Reads dotenv file", func(t *testing.T) {
		setEnv(t)
		// godotenv never overrides variables that are already set.
		os.Unsetenv("JKOPAY_STORE_ID")
		t.Cleanup(func() { os.Unsetenv("JKOPAY_STORE_ID") })

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JKOPAY_STORE_ID=from-dotenv\n"), 0o600))
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.StoreID)
	})
}
