package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", settings.Server.Addr())
	assert.Equal(t, 10*time.Second, settings.Server.ShutdownTimeout)
	assert.Equal(t, "data/TOTAL2024-2026.xlsx", settings.Data.CurrentPath)
	assert.Equal(t, "data/dek2023_1-5_6-30_.xlsx", settings.Data.LegacyPath)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aging.yaml")
	content := `server:
  port: 9090
  shutdown_timeout: 3s
data:
  current_path: "/srv/current.xlsx"
log_level: debug`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("AGING_DATA_LEGACY_PATH", "/srv/legacy.xls")
	t.Setenv("AGING_SERVER_HOST", "0.0.0.0")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", settings.Server.Addr())
	assert.Equal(t, 3*time.Second, settings.Server.ShutdownTimeout)
	assert.Equal(t, "/srv/current.xlsx", settings.Data.CurrentPath)
	assert.Equal(t, "/srv/legacy.xls", settings.Data.LegacyPath)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [port: bad"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("data:\n  current_path: \"\"\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorContains(t, err, "data.current_path")
}
