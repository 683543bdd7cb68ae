package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tally-finance/backend/internal/config"
	"github.com/tally-finance/backend/internal/recurrence"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), c)
	assert.Equal(t, recurrence.CatchUpSingle, c.CatchUp())
	assert.Equal(t, time.UTC, c.Location())
	assert.Equal(t, []int{1, 3, 7}, c.DefaultSettings().BillReminderDays)
	assert.Equal(t, "USD", c.DefaultSettings().Currency)
	assert.Equal(t, 30*time.Minute, c.ManagerOptions().IdleTimeout)
	assert.Equal(t, 1000, c.ManagerOptions().MaxSessions)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
listen = ":9000"

[engine]
catch_up = "all"
default_reminder_days = [7, 2, 2]
default_currency = "eur"
timezone = "Europe/Berlin"
`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.Server.Listen)
	assert.Equal(t, recurrence.CatchUpAll, c.CatchUp())
	assert.Equal(t, "Europe/Berlin", c.Location().String())

	settings := c.DefaultSettings()
	assert.Equal(t, []int{2, 7}, settings.BillReminderDays)
	assert.Equal(t, "EUR", settings.Currency)
	assert.Equal(t, "en", settings.Locale, "unset values keep their default")
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("ENGINE_DEFAULT_REMINDER_DAYS", "1,14")

	c, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Server.GinMode)
	assert.True(t, c.Server.EnablePprof)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, c.CORSAllowOrigins())
	assert.Equal(t, "db", c.DatabaseConfig().Host)
	assert.Equal(t, []int{1, 14}, c.Engine.DefaultReminderDays)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"catch up mode", "ENGINE_CATCH_UP", "sometimes"},
		{"reminder days", "ENGINE_DEFAULT_REMINDER_DAYS", "0,3"},
		{"timezone", "ENGINE_TIMEZONE", "Mars/Olympus_Mons"},
		{"api url", "API_URL", "localhost"},
		{"session idle timeout", "ENGINE_SESSION_IDLE_TIMEOUT", "soon"},
		{"negative session idle timeout", "ENGINE_SESSION_IDLE_TIMEOUT", "-1m"},
		{"negative max sessions", "ENGINE_MAX_SESSIONS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nlisten ="), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c := config.Default()
	c.Server.Listen = ":7000"
	c.Engine.CatchUp = string(recurrence.CatchUpAll)

	require.NoError(t, config.Save(c, path))
	assert.True(t, config.Exists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestPath(t *testing.T) {
	t.Setenv("TALLY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/tally/config.toml", config.Path())

	t.Setenv("TALLY_CONFIG", "/etc/tally.toml")
	assert.Equal(t, "/etc/tally.toml", config.Path())
}
