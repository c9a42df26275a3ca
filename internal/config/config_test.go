package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeEnvFile(t, "SERVER_ADDRESS=:9090\nDB_SOURCE=postgres://u:p@localhost:5432/geo\nLOG_LEVEL=debug\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/geo", cfg.DBSource)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "DB_SOURCE=postgres://file\n")
	t.Setenv("DB_SOURCE", "postgres://env")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.DBSource)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, ":8080", cfg.ServerAddress)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgres://env")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.DBSource)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing db source", content: "SERVER_ADDRESS=:8080\n"},
		{name: "unknown log level", content: "DB_SOURCE=postgres://x\nLOG_LEVEL=loud\n"},
		{name: "unknown gin mode", content: "DB_SOURCE=postgres://x\nGIN_MODE=prod\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_SOURCE", "")
			dir := writeEnvFile(t, tt.content)

			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}
