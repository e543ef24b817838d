package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the reporter
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration for txscan
type Config struct {
	// Inputs
	BaseDir       string   `yaml:"base_dir" env:"TXSCAN_BASE_DIR"`
	Transmissions []string `yaml:"transmissions" env:"TXSCAN_TRANSMISSIONS"`
	Signatures    []string `yaml:"signatures" env:"TXSCAN_SIGNATURES"`

	// Loading
	TrimWhitespace bool  `yaml:"trim_whitespace" env:"TXSCAN_TRIM"`
	MaxInputBytes  int64 `yaml:"max_input_bytes" env:"TXSCAN_MAX_INPUT_BYTES"`
	Parallelism    int   `yaml:"parallelism" env:"TXSCAN_PARALLELISM"`

	// Output
	Format   string `yaml:"format" env:"TXSCAN_FORMAT"`
	LogLevel string `yaml:"log_level" env:"TXSCAN_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Transmissions: []string{"transmission1.txt", "transmission2.txt"},
		Signatures:    []string{"mcode1.txt", "mcode2.txt", "mcode3.txt"},
		MaxInputBytes: 16 << 20,
		Parallelism:   4,
		Format:        FormatText,
		LogLevel:      "warn",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("TXSCAN_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "txscan", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "txscan", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if dir := os.Getenv("TXSCAN_BASE_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if list := os.Getenv("TXSCAN_TRANSMISSIONS"); list != "" {
		cfg.Transmissions = splitList(list)
	}

	if list := os.Getenv("TXSCAN_SIGNATURES"); list != "" {
		cfg.Signatures = splitList(list)
	}

	if trim := os.Getenv("TXSCAN_TRIM"); trim != "" {
		v, err := parseBool(trim)
		if err != nil {
			return fmt.Errorf("invalid TXSCAN_TRIM value: %w", err)
		}
		cfg.TrimWhitespace = v
	}

	if size := os.Getenv("TXSCAN_MAX_INPUT_BYTES"); size != "" {
		n, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TXSCAN_MAX_INPUT_BYTES: %w", err)
		}
		cfg.MaxInputBytes = n
	}

	if p := os.Getenv("TXSCAN_PARALLELISM"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid TXSCAN_PARALLELISM: %w", err)
		}
		cfg.Parallelism = n
	}

	if format := os.Getenv("TXSCAN_FORMAT"); format != "" {
		cfg.Format = format
	}

	if level := os.Getenv("TXSCAN_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q (use true/false)", s)
	}
}

// splitList splits a comma-separated list, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if len(cfg.Transmissions) == 0 {
		return fmt.Errorf("at least one transmission is required")
	}

	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of text, json, yaml (got %q)", cfg.Format)
	}

	if cfg.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive")
	}

	if cfg.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive")
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", cfg.LogLevel)
	}

	return nil
}
