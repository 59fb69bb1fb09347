package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	goerrors "github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/cbodonnell/greatescape/pkg/repositories"
)

// Environment variables that override the file.
const (
	EnvSaveURL   = "ESCAPE_SAVE_URL"
	EnvLevelsDir = "ESCAPE_LEVELS_DIR"
	EnvLogLevel  = "ESCAPE_LOG_LEVEL"
)

// DefaultPath is read when no config file is given.
const DefaultPath = "escape.yaml"

type Config struct {
	LevelsDir        string `yaml:"levels_dir"`
	SaveURL          string `yaml:"save_url"`
	TickInterval     string `yaml:"tick_interval"`
	AutosaveInterval string `yaml:"autosave_interval"`
	LogLevel         string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		LevelsDir:        "levels",
		SaveURL:          "file://saves",
		TickInterval:     "100ms",
		AutosaveInterval: "30s",
		LogLevel:         "info",
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("No config file at %s, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvSaveURL); ok && v != "" {
		c.SaveURL = v
	}
	if v, ok := os.LookupEnv(EnvLevelsDir); ok && v != "" {
		c.LevelsDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	el := goerrors.NewErrorList()

	if c.LevelsDir == "" {
		el.Add(fmt.Errorf("levels_dir is required"))
	}

	if u, err := url.Parse(c.SaveURL); err != nil {
		el.Add(fmt.Errorf("parsing save_url: %w", err))
	} else if !repositories.SupportsScheme(u.Scheme) {
		el.Add(fmt.Errorf("save_url has unsupported scheme %q", u.Scheme))
	}

	if d, err := time.ParseDuration(c.TickInterval); err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("tick_interval must be positive"))
	}

	if d, err := time.ParseDuration(c.AutosaveInterval); err != nil {
		el.Add(fmt.Errorf("parsing autosave_interval: %w", err))
	} else if d < 0 {
		el.Add(fmt.Errorf("autosave_interval must not be negative"))
	}

	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		el.Add(fmt.Errorf("parsing log_level: %w", err))
	}

	return el.Err()
}

// Tick returns the game loop interval. Call after Validate.
func (c *Config) Tick() time.Duration {
	d, _ := time.ParseDuration(c.TickInterval)
	return d
}

// Autosave returns the autosave interval; zero disables autosaves.
func (c *Config) Autosave() time.Duration {
	d, _ := time.ParseDuration(c.AutosaveInterval)
	return d
}

func (c *Config) Level() log.LogLevel {
	level, err := log.ParseLogLevel(c.LogLevel)
	if err != nil {
		return log.LogLevelInfo
	}
	return level
}
