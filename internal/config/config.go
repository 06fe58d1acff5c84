// Package config loads client configuration. Defaults are overlaid by an
// optional YAML file and finally by environment variables, so a deployed
// shell profile always wins over the config file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ChouguleParas07/RentAThing/internal/errors"
)

// Config holds the client's runtime configuration.
type Config struct {
	// APIBase is the base URL of the Rent-a-Thing service.
	APIBase string `env:"RENTATHING_API_BASE" yaml:"api_base"`

	// SessionDir is where the token and cached user profile are persisted.
	SessionDir string `env:"RENTATHING_SESSION_DIR" yaml:"session_dir"`

	// RequestTimeout bounds each API call. The client itself never retries
	// or cancels; this is the transport's only limit.
	RequestTimeout time.Duration `env:"RENTATHING_TIMEOUT" yaml:"request_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"RENTATHING_LOG_LEVEL" yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `env:"RENTATHING_LOG_FORMAT" yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBase:        "http://localhost:8000",
		SessionDir:     filepath.Join(homeDir(), ".rentathing", "session"),
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load builds the effective configuration: defaults, then the config file
// at ~/.rentathing/config.yaml when present, then environment variables.
func Load() (Config, error) {
	return LoadFrom(filepath.Join(homeDir(), ".rentathing", "config.yaml"))
}

// LoadFrom is Load with an explicit config file path. A missing file is not
// an error; a malformed one is.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid, "parse "+path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.ErrCodeConfigRead, "read "+path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid, "parse environment", err)
	}

	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
