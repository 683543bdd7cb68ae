// Package config loads the configuration from defaults, an optional TOML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"github.com/tally-finance/backend/internal/live"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/recurrence"
)

var ErrNegative = errors.New("must not be negative")

type Config struct {
	Server   ServerConfig   `toml:"server" mapstructure:"server"`
	Log      LogConfig      `toml:"log" mapstructure:"log"`
	Database DatabaseConfig `toml:"database" mapstructure:"database"`
	Engine   EngineConfig   `toml:"engine" mapstructure:"engine"`
}

type ServerConfig struct {
	Listen           string `toml:"listen" mapstructure:"listen"`
	APIURL           string `toml:"api_url" mapstructure:"api_url"`
	GinMode          string `toml:"gin_mode" mapstructure:"gin_mode"`
	CORSAllowOrigins string `toml:"cors_allow_origins,omitempty" mapstructure:"cors_allow_origins"` // Space separated
	EnablePprof      bool   `toml:"enable_pprof" mapstructure:"enable_pprof"`
}

type LogConfig struct {
	Format string `toml:"format,omitempty" mapstructure:"format"` // "human" or "json", derived from the gin mode if empty
}

type DatabaseConfig struct {
	Path     string `toml:"path" mapstructure:"path"`
	Host     string `toml:"host,omitempty" mapstructure:"host"`
	User     string `toml:"user,omitempty" mapstructure:"user"`
	Password string `toml:"password,omitempty" mapstructure:"password"`
	Name     string `toml:"name,omitempty" mapstructure:"name"`
}

type EngineConfig struct {
	CatchUp             string `toml:"catch_up" mapstructure:"catch_up"`
	DefaultReminderDays []int  `toml:"default_reminder_days" mapstructure:"default_reminder_days"`
	DefaultLocale       string `toml:"default_locale" mapstructure:"default_locale"`
	DefaultCurrency     string `toml:"default_currency" mapstructure:"default_currency"`
	Timezone            string `toml:"timezone" mapstructure:"timezone"`
	SessionIdleTimeout  string `toml:"session_idle_timeout" mapstructure:"session_idle_timeout"` // Go duration, "0" keeps sessions open
	MaxSessions         int    `toml:"max_sessions" mapstructure:"max_sessions"`                 // 0 is unbounded
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Listen:  ":8080",
			APIURL:  "http://localhost:8080",
			GinMode: "release",
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "tally.db"),
		},
		Engine: EngineConfig{
			CatchUp:             string(recurrence.CatchUpSingle),
			DefaultReminderDays: []int{1, 3, 7},
			DefaultLocale:       "en",
			DefaultCurrency:     "USD",
			Timezone:            "UTC",
			SessionIdleTimeout:  "30m",
			MaxSessions:         1000,
		},
	}
}

// Dir returns the XDG config directory for tally.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tally")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tally")
}

// Path returns the path of the config file: TALLY_CONFIG if set, the file in
// Dir otherwise.
func Path() string {
	if path := os.Getenv("TALLY_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(Dir(), "config.toml")
}

// env maps config keys to the environment variables that override them.
var env = map[string]string{
	"server.listen":                "LISTEN",
	"server.api_url":               "API_URL",
	"server.gin_mode":              "GIN_MODE",
	"server.cors_allow_origins":    "CORS_ALLOW_ORIGINS",
	"server.enable_pprof":          "ENABLE_PPROF",
	"log.format":                   "LOG_FORMAT",
	"database.path":                "DATABASE_PATH",
	"database.host":                "DATABASE_HOST",
	"database.user":                "DATABASE_USER",
	"database.password":            "DATABASE_PASSWORD",
	"database.name":                "DATABASE_NAME",
	"engine.catch_up":              "ENGINE_CATCH_UP",
	"engine.default_reminder_days": "ENGINE_DEFAULT_REMINDER_DAYS",
	"engine.default_locale":        "ENGINE_DEFAULT_LOCALE",
	"engine.default_currency":      "ENGINE_DEFAULT_CURRENCY",
	"engine.timezone":              "ENGINE_TIMEZONE",
	"engine.session_idle_timeout":  "ENGINE_SESSION_IDLE_TIMEOUT",
	"engine.max_sessions":          "ENGINE_MAX_SESSIONS",
}

// Load reads the configuration. path selects the config file, Path() is
// used if it is empty. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("server.listen", d.Server.Listen)
	v.SetDefault("server.api_url", d.Server.APIURL)
	v.SetDefault("server.gin_mode", d.Server.GinMode)
	v.SetDefault("server.cors_allow_origins", d.Server.CORSAllowOrigins)
	v.SetDefault("server.enable_pprof", d.Server.EnablePprof)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("engine.catch_up", d.Engine.CatchUp)
	v.SetDefault("engine.default_reminder_days", d.Engine.DefaultReminderDays)
	v.SetDefault("engine.default_locale", d.Engine.DefaultLocale)
	v.SetDefault("engine.default_currency", d.Engine.DefaultCurrency)
	v.SetDefault("engine.timezone", d.Engine.Timezone)
	v.SetDefault("engine.session_idle_timeout", d.Engine.SessionIdleTimeout)
	v.SetDefault("engine.max_sessions", d.Engine.MaxSessions)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the values that are parsed later.
func (c Config) Validate() error {
	if _, err := recurrence.ParseCatchUp(c.Engine.CatchUp); err != nil {
		return fmt.Errorf("engine.catch_up: %w", err)
	}

	if _, err := models.NormalizeReminderDays(c.Engine.DefaultReminderDays); err != nil {
		return fmt.Errorf("engine.default_reminder_days: %w", err)
	}

	if _, err := time.LoadLocation(c.Engine.Timezone); err != nil {
		return fmt.Errorf("engine.timezone: %w", err)
	}

	if d, err := time.ParseDuration(c.Engine.SessionIdleTimeout); err != nil {
		return fmt.Errorf("engine.session_idle_timeout: %w", err)
	} else if d < 0 {
		return fmt.Errorf("engine.session_idle_timeout: %w", ErrNegative)
	}

	if c.Engine.MaxSessions < 0 {
		return fmt.Errorf("engine.max_sessions: %w", ErrNegative)
	}

	if _, err := c.URL(); err != nil {
		return fmt.Errorf("server.api_url: %w", err)
	}

	return nil
}

// URL returns the external URL of the API.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.Server.APIURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", c.Server.APIURL)
	}
	return u, nil
}

// Location returns the time zone that determines the current date.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Engine.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CatchUp returns the catch up mode of the materializer.
func (c Config) CatchUp() recurrence.CatchUp {
	mode, err := recurrence.ParseCatchUp(c.Engine.CatchUp)
	if err != nil {
		return recurrence.CatchUpSingle
	}
	return mode
}

// ManagerOptions returns the limits of the live session manager.
func (c Config) ManagerOptions() live.ManagerOptions {
	timeout, err := time.ParseDuration(c.Engine.SessionIdleTimeout)
	if err != nil {
		timeout = 0
	}

	return live.ManagerOptions{
		IdleTimeout: timeout,
		MaxSessions: c.Engine.MaxSessions,
	}
}

// CORSAllowOrigins returns the origins allowed for CORS requests.
func (c Config) CORSAllowOrigins() []string {
	return strings.Fields(c.Server.CORSAllowOrigins)
}

// DefaultSettings returns the settings used for users without stored settings.
func (c Config) DefaultSettings() models.Settings {
	days, _ := models.NormalizeReminderDays(c.Engine.DefaultReminderDays)
	return models.Settings{
		BillReminderDays: days,
		Locale:           c.Engine.DefaultLocale,
		Currency:         strings.ToUpper(c.Engine.DefaultCurrency),
	}
}

// DatabaseConfig returns the database connection settings.
func (c Config) DatabaseConfig() models.DatabaseConfig {
	return models.DatabaseConfig{
		Path:     c.Database.Path,
		Host:     c.Database.Host,
		User:     c.Database.User,
		Password: c.Database.Password,
		Name:     c.Database.Name,
	}
}

// Save writes the config to path, creating its directory if needed.
func Save(c Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
