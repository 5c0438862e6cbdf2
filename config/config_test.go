package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "APP_PORT=9090\nDB_HOST=db.internal\nJWT_ACCESS_EXPIRY=30m\nAUDIT_RETENTION_DAYS=30\nSMTP_PORT=2525\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, 90, cfg.Audit.RetentionDays)
	assert.Equal(t, "0 3 * * *", cfg.Audit.PurgeCron)
	assert.Equal(t, "patient123", cfg.Patient.DefaultPassword)
}

func TestLoadConfigFrom_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	cfg, err := LoadConfigFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Manila", AppConfig{Timezone: "Asia/Manila"}.Location().String())
	assert.Equal(t, time.UTC, AppConfig{Timezone: "Not/AZone"}.Location())
}
