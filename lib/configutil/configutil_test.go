package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Port    int    `json:"port"`
	Agent   string `json:"user_agent"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		// comments are allowed
		base_url: "https://www.gsmarena.com/",
		port: 8000,
		user_agent: "default",
	}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		port: 9000,
	}`), 0600))

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://www.gsmarena.com/", cfg.BaseUrl)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, "default", cfg.Agent)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestGetenvFallback(t *testing.T) {
	t.Setenv("GSMARENA_TEST_SET", "value")
	require.Equal(t, "value", Getenv("GSMARENA_TEST_SET", "fallback"))
	require.Equal(t, "fallback", Getenv("GSMARENA_TEST_UNSET_VARIABLE", "fallback"))
}
