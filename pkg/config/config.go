package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Site struct {
		URL             string        `yaml:"url"`
		IntroCombine    time.Duration `yaml:"intro_combine" default:"1200ms"`
		IntroDuration   time.Duration `yaml:"intro_duration" default:"3200ms"`
		ToastTTL        time.Duration `yaml:"toast_ttl" default:"3000ms"`
		ScrollThreshold float64       `yaml:"scroll_threshold" default:"50"`
	} `yaml:"site"`
	Session struct {
		MaxSessions    int           `yaml:"max_sessions" default:"1000"`
		PingInterval   time.Duration `yaml:"ping_interval" default:"30s"`
		WriteTimeout   time.Duration `yaml:"write_timeout" default:"5s"`
		ReadLimit      int64         `yaml:"read_limit" default:"4096"`
		ActionCapacity float64       `yaml:"action_capacity" default:"5"`
		ActionRefill   float64       `yaml:"action_refill" default:"2"`
	} `yaml:"session"`
}

// Default returns a configuration with every default applied.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file. Missing keys take
// their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes into a validated Config.
func Parse(b []byte) (*Config, error) {
	// Defaults first so explicit zero values in the file win.
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("SITE_URL"); v != "" {
		c.Site.URL = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'console' or 'json', got '%s'", c.Log.Format)
	}
	if c.Site.IntroCombine <= 0 || c.Site.IntroDuration <= 0 || c.Site.ToastTTL <= 0 {
		return fmt.Errorf("site timings must be positive")
	}
	if c.Site.IntroDuration <= c.Site.IntroCombine {
		return fmt.Errorf("site.intro_duration (%s) must exceed site.intro_combine (%s)", c.Site.IntroDuration, c.Site.IntroCombine)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if c.Session.PingInterval <= 0 || c.Session.WriteTimeout <= 0 {
		return fmt.Errorf("session intervals must be positive")
	}
	if c.Session.ActionCapacity < 1 || c.Session.ActionRefill <= 0 {
		return fmt.Errorf("session.action_capacity must be >= 1 and action_refill > 0")
	}
	return nil
}
