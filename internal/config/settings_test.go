package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, key := range []string{
		"READYVAULT_DB_PATH", "READYVAULT_CACHE_DIR", "READYVAULT_PORT",
		"READYVAULT_LOG_LEVEL", "READYVAULT_LOG_FILE", "READYVAULT_REDIS_ADDR", "READYVAULT_DEV_MODE",
	} {
		t.Setenv(key, "")
	}

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "readyvault.db", filepath.Base(s.DatabasePath))
	assert.Equal(t, "cache", filepath.Base(s.CacheDir))
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.RedisAddr)
	assert.False(t, s.DevMode)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("READYVAULT_DB_PATH", filepath.Join(dir, "test.db"))
	t.Setenv("READYVAULT_CACHE_DIR", filepath.Join(dir, "cache"))
	t.Setenv("READYVAULT_PORT", "9090")
	t.Setenv("READYVAULT_LOG_LEVEL", "debug")
	t.Setenv("READYVAULT_REDIS_ADDR", "localhost:6379")
	t.Setenv("READYVAULT_DEV_MODE", "true")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "test.db"), s.DatabasePath)
	assert.Equal(t, 9090, s.Port)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "localhost:6379", s.RedisAddr)
	assert.True(t, s.DevMode)
}

func TestLoadSettings_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("READYVAULT_PORT", "not-a-port")
	t.Setenv("READYVAULT_DEV_MODE", "maybe")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 8080, s.Port)
	assert.False(t, s.DevMode)
}

func TestSettings_Validate(t *testing.T) {
	s := &Settings{DatabasePath: "x.db", Port: 70000}
	assert.ErrorContains(t, s.Validate(), "READYVAULT_PORT")

	s = &Settings{Port: 8080}
	assert.ErrorContains(t, s.Validate(), "READYVAULT_DB_PATH")
}
