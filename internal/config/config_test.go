package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dexview/internal/config"
	"dexview/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
api:
  base_url: "https://catalog.example.test/api/items"
  page_size: 12
  timeout: 7
  concurrency: 4
ui:
  theme: ocean
  sprites: false
log:
  level: debug
  file: /tmp/dexview-test.log
`
	invalidSyntaxYAML = `
api:
  base_url: "https://catalog.example.test
  page_size: [
`
	invalidPageSizeYAML = `
api:
  page_size: -3
`
	invalidBaseURLYAML = `
api:
  base_url: "catalog.example.test/items"
`
	invalidThemeYAML = `
ui:
  theme: neon
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "https://catalog.example.test/api/items", cfg.API.BaseURL)
		assert.Equal(t, 12, cfg.API.PageSize)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
		assert.Equal(t, 4, cfg.API.Concurrency)
		assert.Equal(t, "dexview", cfg.API.UserAgent, "unset keys keep their defaults")
		assert.Equal(t, "ocean", cfg.UI.Theme)
		assert.Equal(t, "31", cfg.Theme.Primary)
		assert.False(t, cfg.UI.Sprites)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "/tmp/dexview-test.log", cfg.Log.File)
	})

	t.Run("load non-existent file", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
		require.NoError(t, err, "Loading non-existent file should return default config, not an error")

		defaults := config.New()
		assert.Equal(t, defaults.API, cfg.API)
		assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, config.DefaultPageSize, cfg.API.PageSize)
		assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
		assert.True(t, cfg.UI.Sprites)
	})

	t.Run("sprites default survives a file without ui section", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, "api:\n  page_size: 5\n"))
		require.NoError(t, err)
		assert.True(t, cfg.UI.Sprites)
		assert.Equal(t, 5, cfg.API.PageSize)
	})

	t.Run("load file with invalid YAML syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("unreadable path", func(t *testing.T) {
		dir := t.TempDir()
		_, err := config.LoadConfigFile(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file "+dir)
		assert.False(t, errors.IsInvalidConfig(err))

		var appErr *errors.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.NotNil(t, errors.Unwrap(err))
	})

	invalid := []struct {
		name  string
		yaml  string
		param string
	}{
		{"page size", invalidPageSizeYAML, "api.page_size"},
		{"base url", invalidBaseURLYAML, "api.base_url"},
		{"theme", invalidThemeYAML, "ui.theme"},
	}
	for _, tc := range invalid {
		t.Run("invalid "+tc.name, func(t *testing.T) {
			_, err := config.LoadConfigFile(createTestYAML(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.True(t, errors.IsInvalidConfig(err))

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tc.param, configErr.Param())
		})
	}
}

func TestValidate(t *testing.T) {
	var nilCfg *config.Config
	assert.ErrorIs(t, nilCfg.Validate(), errors.ErrInvalidConfig)

	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.API.Timeout = -1
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.API.Concurrency = -2
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.API.PageSize = 1001
	assert.Error(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.API.PageSize = 30
	cfg.UI.Theme = "sunset"

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.API.PageSize)
	assert.Equal(t, "sunset", loaded.UI.Theme)
	assert.Equal(t, "208", loaded.Theme.Primary)
}

func TestThemes(t *testing.T) {
	assert.Len(t, config.ListThemes(), 6)
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("missing"))

	cfg := config.New()
	cfg.ApplyTheme("dark")
	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Equal(t, "160", cfg.Theme.Error)
}
