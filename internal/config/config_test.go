package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "https://api.themoviedb.org/3", cfg.Provider.BaseURL)
	require.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.Provider.ImageBaseURL)
	require.NotEmpty(t, cfg.Provider.APIKey)
	require.Equal(t, 3*time.Second, cfg.UI.NoticeDuration)
	require.Equal(t, 1*time.Second, cfg.UI.ReturnDelay)
	require.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
provider:
  api_key: my-key
  base_url: http://localhost:9999
ui:
  return_delay: 250ms
logging:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "my-key", cfg.Provider.APIKey)
	require.Equal(t, "http://localhost:9999", cfg.Provider.BaseURL)
	require.Equal(t, 250*time.Millisecond, cfg.UI.ReturnDelay)
	require.Equal(t, "DEBUG", cfg.Logging.Level)

	// Untouched sections keep defaults
	require.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.Provider.ImageBaseURL)
	require.Equal(t, 3*time.Second, cfg.UI.NoticeDuration)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().Provider.BaseURL, cfg.Provider.BaseURL)
}
