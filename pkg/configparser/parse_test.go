package configparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Port    string        `env:"TEST_SERVER_PORT" default:"8080"`
		Timeout time.Duration `env:"TEST_SERVER_TIMEOUT" default:"5s"`
	}
	Cache struct {
		Enabled bool    `env:"TEST_CACHE_ENABLED" default:"false"`
		Ratio   float64 `env:"TEST_CACHE_RATIO" default:"0.5"`
		Size    int     `env:"TEST_CACHE_SIZE" default:"10"`
	}
	ignored string
}

func TestParseEnv_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.InDelta(t, 0.5, cfg.Cache.Ratio, 1e-9)
	assert.Equal(t, 10, cfg.Cache.Size)
	assert.Empty(t, cfg.ignored)
}

func TestParseEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "9999")
	t.Setenv("TEST_CACHE_ENABLED", "true")

	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.True(t, cfg.Cache.Enabled)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("TEST_CACHE_SIZE", "ten")

	var cfg testConfig
	assert.Error(t, ParseEnv(&cfg))
}

func TestParseEnv_RequiresPointer(t *testing.T) {
	assert.ErrorIs(t, ParseEnv(testConfig{}), ErrNotStructPointer)
}

func TestLoadYamlFile_FlattensNestedKeys(t *testing.T) {
	t.Setenv("TEST_CACHE_SIZE", "")
	t.Setenv("TEST_SERVER_PORT", "")
	t.Setenv("TEST_SERVER_TIMEOUT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := []byte(`
test:
  server:
    port: 7000
    timeout: ${LAPLA_UNSET_TIMEOUT:-2s}
  cache:
    size: 42
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(path, &cfg))

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 42, cfg.Cache.Size)
}

func TestLoadYamlFile_DoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "1234")

	require.NoError(t, LoadYaml([]byte("test:\n  server:\n    port: 7000\n")))
	assert.Equal(t, "1234", os.Getenv("TEST_SERVER_PORT"))
}

func TestLoadAndParseYaml_MissingFileUsesDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	assert.Equal(t, 10, cfg.Cache.Size)
}
