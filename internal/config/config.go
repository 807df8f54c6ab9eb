// Package config loads the advent.yaml tool configuration and the
// session credential from the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SessionEnv names the environment variable holding the puzzle session
// cookie value. It is typically defined in a gitignored .env file.
const SessionEnv = "AOC_SESSION"

const (
	defaultYear        = 2023
	defaultTemplateDir = "template"
	defaultManifest    = "Cargo.toml"
	defaultDayPrefix   = "day"
	defaultBaseURL     = "https://adventofcode.com"
	defaultInputFile   = "input"
)

// Config represents the tool configuration. Every field is optional;
// zero values are replaced with workspace defaults.
type Config struct {
	Year         int    `yaml:"year,omitempty"`          // event year used in the input URL
	TemplateDir  string `yaml:"template_dir,omitempty"`  // template crate to copy
	ManifestPath string `yaml:"manifest_path,omitempty"` // workspace manifest holding the members list
	DayPrefix    string `yaml:"day_prefix,omitempty"`    // directory name prefix, e.g. "day" -> day01
	BaseURL      string `yaml:"base_url,omitempty"`      // puzzle host
	InputFile    string `yaml:"input_file,omitempty"`    // file name written inside the day directory
}

// Load reads the configuration file at path. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if cfg.Year < 2015 {
		return nil, fmt.Errorf("invalid year %d: Advent of Code started in 2015", cfg.Year)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Year == 0 {
		cfg.Year = defaultYear
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = defaultTemplateDir
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = defaultManifest
	}
	if cfg.DayPrefix == "" {
		cfg.DayPrefix = defaultDayPrefix
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.InputFile == "" {
		cfg.InputFile = defaultInputFile
	}
}

// DayDir returns the directory name for a zero-padded day string,
// e.g. "01" -> "day01".
func (c *Config) DayDir(padded string) string {
	return c.DayPrefix + padded
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Year:         defaultYear,
		TemplateDir:  defaultTemplateDir,
		ManifestPath: defaultManifest,
		DayPrefix:    defaultDayPrefix,
		BaseURL:      defaultBaseURL,
		InputFile:    defaultInputFile,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	header := fmt.Sprintf("# advent configuration\n# The session cookie is read from the %s environment variable.\n", SessionEnv)

	if err := os.WriteFile(configPath, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Session returns the puzzle session credential from the environment.
// An empty value is not an error here; it surfaces as an authentication
// failure at the endpoint.
func Session() string {
	return os.Getenv(SessionEnv)
}
