// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and data directories.
const AppName = "jeopardy-trainer"

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "JEOPARDY_"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Render  RenderConfig  `yaml:"render"`
}

// ServerConfig locates the remote session service.
type ServerConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// SessionConfig tunes new sessions.
type SessionConfig struct {
	Count int `yaml:"count"`
}

// StoreConfig locates the local results history.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the log file. The terminal belongs to the TUI, so
// logs never go to stdout.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// RenderConfig controls how question text is rendered.
type RenderConfig struct {
	Style string `yaml:"style"`
	Plain bool   `yaml:"plain"`
}

// Overrides carries values set by command-line flags. Empty fields leave
// the loaded value alone.
type Overrides struct {
	ServerURL string
	DBPath    string
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := DataDir()
	return &Config{
		Server:  ServerConfig{URL: "http://localhost:8000", Timeout: 10 * time.Second},
		Session: SessionConfig{Count: 10},
		Store:   StoreConfig{Path: filepath.Join(dataDir, "history.db")},
		Log:     LogConfig{Path: filepath.Join(dataDir, "jeopardy.log"), Level: "info"},
		Render:  RenderConfig{Style: "dark"},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or the default config file when path is empty), then a .env file in the
// working directory, then JEOPARDY_* environment variables.
func Load(path string) (*Config, error) {
	return load(path, ".env", os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.mergeEnv(env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(env func(string) (string, bool)) error {
	if v, ok := env(EnvPrefix + "SERVER"); ok {
		c.Server.URL = v
	}
	if v, ok := env(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Server.Timeout = d
	}
	if v, ok := env(EnvPrefix + "COUNT"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sCOUNT: %w", EnvPrefix, err)
		}
		c.Session.Count = n
	}
	if v, ok := env(EnvPrefix + "DB"); ok {
		c.Store.Path = v
	}
	if v, ok := env(EnvPrefix + "LOG"); ok {
		c.Log.Path = v
	}
	if v, ok := env(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := env(EnvPrefix + "STYLE"); ok {
		c.Render.Style = v
	}
	if v, ok := env(EnvPrefix + "PLAIN"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sPLAIN: %w", EnvPrefix, err)
		}
		c.Render.Plain = b
	}
	return nil
}

// Apply layers flag overrides on top of the loaded configuration and
// validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.ServerURL != "" {
		c.Server.URL = o.ServerURL
	}
	if o.DBPath != "" {
		c.Store.Path = o.DBPath
	}
	return c.Validate()
}

// Validate checks that all required configuration fields are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server url %q must be an absolute URL", c.Server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server url %q must use http or https", c.Server.URL)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be > 0")
	}
	if c.Session.Count <= 0 {
		return fmt.Errorf("session count must be > 0")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store path cannot be empty")
	}
	return nil
}

// DataDir returns $XDG_DATA_HOME/jeopardy-trainer, falling back to
// ~/.local/share/jeopardy-trainer.
func DataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return AppName
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, AppName)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/jeopardy-trainer/config.yaml,
// falling back to ~/.config.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(AppName, "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, "config.yaml")
}
