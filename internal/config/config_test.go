package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.False(t, cfg.DemoMode)
	assert.Equal(t, filepath.Join(home, ".slim", "session.toml"), cfg.SessionPath)
	assert.Equal(t, filepath.Join(home, ".slim", "secrets"), cfg.SecretsDir)
	assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", cfg.Phone.BaseURL)
	assert.Equal(t, "phone/api_key", cfg.Phone.APIKeySecret)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".slim"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".slim", "config.toml"), []byte(`
demo_mode = true

[api]
base_url = "https://slim.example.com/"

[log]
level = "debug"
`), 0o600))
	t.Setenv("SLIM_LOG_LEVEL", "error")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://slim.example.com", cfg.APIBaseURL)
	assert.True(t, cfg.DemoMode)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadReadsDotenvWithoutOverridingEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SLIM_PHONE_API_KEY", "from-env")

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("SLIM_PHONE_API_KEY=from-dotenv\nSLIM_DEMO_MODE=true\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SLIM_DEMO_MODE") })

	cfg, err := Load(viper.New(), dotenv)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Phone.APIKey)
	assert.True(t, cfg.DemoMode)
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SLIM_API_BASE_URL", "ftp://slim.example.com")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "api.base_url must use http or https")
}
