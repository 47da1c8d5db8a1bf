package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/summarize"
	"gopkg.in/yaml.v3"
)

// Extractor names accepted by --extractor.
const (
	ExtractorNone        = "none"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config holds settings shared by all commands. Zero fields are unset and
// are filled from the next source down: flags, environment, config file,
// defaults.
type Config struct {
	KeepRatio         float64       `yaml:"keep_ratio"`
	Timeout           time.Duration `yaml:"timeout"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Retries           int           `yaml:"retries"`
	Extractor         string        `yaml:"extractor"`
	Browser           bool          `yaml:"browser"`
	StopWords         string        `yaml:"stop_words"`
	DB                string        `yaml:"db"`
	UserAgent         string        `yaml:"user_agent"`
}

// DefaultConfig returns the built-in settings. A negative RequestsPerSecond
// disables rate limiting and negative Retries disables retrying.
func DefaultConfig() Config {
	return Config{
		KeepRatio:         summarize.DefaultKeepRatio,
		Timeout:           10 * time.Second,
		Concurrency:       1,
		RequestsPerSecond: 1.0,
		Retries:           3,
		Extractor:         ExtractorNone,
		DB:                filepath.Join(configDir(), "tldr.db"),
	}
}

// DefaultConfigPath is where the config file is read from when --config is
// not given.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tldr"
	}
	return filepath.Join(home, ".tldr")
}

// LoadConfig reads a YAML config file. A missing file yields a zero Config
// unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, tldr.Errorf(tldr.EINVALID, "reading config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, tldr.Errorf(tldr.EINVALID, "parsing config %s: %v", path, err)
	}
	return cfg, nil
}

// Merge returns c with its unset fields taken from base.
func (c Config) Merge(base Config) Config {
	if c.KeepRatio == 0 {
		c.KeepRatio = base.KeepRatio
	}
	if c.Timeout == 0 {
		c.Timeout = base.Timeout
	}
	if c.Concurrency == 0 {
		c.Concurrency = base.Concurrency
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = base.RequestsPerSecond
	}
	if c.Retries == 0 {
		c.Retries = base.Retries
	}
	if c.Extractor == "" {
		c.Extractor = base.Extractor
	}
	if !c.Browser {
		c.Browser = base.Browser
	}
	if c.StopWords == "" {
		c.StopWords = base.StopWords
	}
	if c.DB == "" {
		c.DB = base.DB
	}
	if c.UserAgent == "" {
		c.UserAgent = base.UserAgent
	}
	return c
}

// Validate returns an EINVALID error for out-of-range settings.
func (c Config) Validate() error {
	if c.KeepRatio <= 0 || c.KeepRatio > 1 {
		return tldr.Errorf(tldr.EINVALID, "keep ratio must be in (0, 1], got %g", c.KeepRatio)
	}
	if c.Concurrency < 1 {
		return tldr.Errorf(tldr.EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return tldr.Errorf(tldr.EINVALID, "timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Extractor {
	case ExtractorNone, ExtractorReadability, ExtractorTrafilatura:
	default:
		return tldr.Errorf(tldr.EINVALID, "unknown extractor %q (want none, readability or trafilatura)", c.Extractor)
	}
	return nil
}
