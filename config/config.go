// SPDX-License-Identifier: MIT

// Package config resolves multiplier settings from defaults, an optional YAML
// file, a .env file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstrassen/strassen"
)

// Environment variables consulted by Load.
const (
	EnvThreshold     = "STRASSEN_THRESHOLD"
	EnvParallelDepth = "STRASSEN_PARALLEL_DEPTH"
	EnvLogLevel      = "STRASSEN_LOG_LEVEL"
)

// envSearchDepth bounds the upward .env lookup.
const envSearchDepth = 5

// ErrInvalidConfig is wrapped by every validation and override failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds multiplier and logging settings.
type Config struct {
	Threshold     int    `yaml:"threshold"`
	ParallelDepth int    `yaml:"parallel_depth"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Threshold:     strassen.DefaultThreshold,
		ParallelDepth: strassen.DefaultParallelDepth,
		LogLevel:      "info",
	}
}

// Load resolves a Config, searching for .env upward from the working directory.
// An empty path skips the YAML stage; a missing file is an error.
func Load(path string) (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return LoadDir(path, dir)
}

// LoadDir is Load with an explicit starting directory for the .env search.
// Non-empty variables in the process environment win over .env values.
func LoadDir(path, dir string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dotenv, err := readEnvFile(dir)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnvOverrides(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate checks ranges and the log level.
func (c *Config) Validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("threshold %d: must be >= 1: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.ParallelDepth < 0 || c.ParallelDepth > strassen.MaxParallelDepth {
		return fmt.Errorf("parallel_depth %d: must be in [0,%d]: %w",
			c.ParallelDepth, strassen.MaxParallelDepth, ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel; empty means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return lvl, nil
}

// Options converts c into multiplier options.
func (c *Config) Options() []strassen.Option {
	return []strassen.Option{
		strassen.WithThreshold(c.Threshold),
		strassen.WithParallelDepth(c.ParallelDepth),
	}
}

func (c *Config) applyEnvOverrides(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvThreshold); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvThreshold, v, ErrInvalidConfig)
		}
		c.Threshold = n
	}
	if v, ok := lookup(EnvParallelDepth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvParallelDepth, v, ErrInvalidConfig)
		}
		c.ParallelDepth = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	return nil
}

// readEnvFile returns the first .env found walking up from dir, or nil.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			vars, err := godotenv.Read(envPath)
			if err != nil {
				return nil, fmt.Errorf("config: %s: %w", envPath, err)
			}
			return vars, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}
