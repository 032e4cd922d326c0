package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	Log LogConfig
	UI  UIConfig
}

// APIConfig points the client at the list backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings. The terminal belongs to the TUI, so logs go to a file.
type LogConfig struct {
	Level  string
	File   string
	Format string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// Flags registers the command line overrides understood by Load.
func Flags(flags *pflag.FlagSet) {
	flags.String("api", "", "backend base URL (overrides api.base_url)")
	flags.Duration("timeout", 0, "per-request timeout, 0 for none (overrides api.timeout)")
	flags.String("log-level", "", "debug, info, warn, error or off (overrides log.level)")
}

// Load reads configuration from flags, env and file, in that order of precedence.
// Env var overrides use prefix THELIST_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:3001")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(stateDir(), "thelist.log"))
	v.SetDefault("log.format", "console")
	v.SetDefault("ui.title", "The List")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("THELIST_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "thelist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("THELIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, name := range map[string]string{
			"api.base_url": "api",
			"api.timeout":  "timeout",
			"log.level":    "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine, a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:3001"
	}
	if c.API.Timeout < 0 {
		return Config{}, fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) (string, error) {
	path := os.Getenv("THELIST_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "thelist", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.format", cfg.Log.Format)
	v.Set("ui.title", cfg.UI.Title)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

func stateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "thelist")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "thelist")
}
