package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envKeys = []string{
	"TXSCAN_CONFIG",
	"TXSCAN_BASE_DIR",
	"TXSCAN_TRANSMISSIONS",
	"TXSCAN_SIGNATURES",
	"TXSCAN_TRIM",
	"TXSCAN_MAX_INPUT_BYTES",
	"TXSCAN_PARALLELISM",
	"TXSCAN_FORMAT",
	"TXSCAN_LOG_LEVEL",
}

// clearEnv empties every TXSCAN_ variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Check default values
	if len(cfg.Transmissions) != 2 || cfg.Transmissions[0] != "transmission1.txt" {
		t.Errorf("unexpected default transmissions %v", cfg.Transmissions)
	}
	if len(cfg.Signatures) != 3 || cfg.Signatures[2] != "mcode3.txt" {
		t.Errorf("unexpected default signatures %v", cfg.Signatures)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected Format to be text but got %s", cfg.Format)
	}
	if cfg.MaxInputBytes != 16<<20 {
		t.Errorf("expected MaxInputBytes to be 16MiB but got %d", cfg.MaxInputBytes)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid environment variables",
			envVars: map[string]string{
				"TXSCAN_BASE_DIR":        "/data",
				"TXSCAN_FORMAT":          "json",
				"TXSCAN_TRIM":            "yes",
				"TXSCAN_MAX_INPUT_BYTES": "1024",
				"TXSCAN_PARALLELISM":     "8",
				"TXSCAN_LOG_LEVEL":       "debug",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.BaseDir != "/data" {
					t.Errorf("expected BaseDir to be /data but got %s", cfg.BaseDir)
				}
				if cfg.Format != FormatJSON {
					t.Errorf("expected Format to be json but got %s", cfg.Format)
				}
				if !cfg.TrimWhitespace {
					t.Error("expected TrimWhitespace to be true")
				}
				if cfg.MaxInputBytes != 1024 {
					t.Errorf("expected MaxInputBytes to be 1024 but got %d", cfg.MaxInputBytes)
				}
				if cfg.Parallelism != 8 {
					t.Errorf("expected Parallelism to be 8 but got %d", cfg.Parallelism)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("expected LogLevel to be debug but got %s", cfg.LogLevel)
				}
			},
		},
		{
			name: "list parsing with spaces",
			envVars: map[string]string{
				"TXSCAN_TRANSMISSIONS": " a.txt , b.txt ,,c.txt",
				"TXSCAN_SIGNATURES":    "sig.txt",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				expected := []string{"a.txt", "b.txt", "c.txt"}
				if len(cfg.Transmissions) != len(expected) {
					t.Fatalf("expected %d transmissions but got %d", len(expected), len(cfg.Transmissions))
				}
				for i, name := range expected {
					if cfg.Transmissions[i] != name {
						t.Errorf("expected transmission[%d] to be %q but got %q", i, name, cfg.Transmissions[i])
					}
				}
				if len(cfg.Signatures) != 1 || cfg.Signatures[0] != "sig.txt" {
					t.Errorf("unexpected signatures %v", cfg.Signatures)
				}
			},
		},
		{
			name: "only separators leaves no transmissions",
			envVars: map[string]string{
				"TXSCAN_TRANSMISSIONS": ",,",
			},
			wantErr: true,
		},
		{
			name: "invalid trim value",
			envVars: map[string]string{
				"TXSCAN_TRIM": "maybe",
			},
			wantErr: true,
		},
		{
			name: "invalid size",
			envVars: map[string]string{
				"TXSCAN_MAX_INPUT_BYTES": "lots",
			},
			wantErr: true,
		},
		{
			name: "invalid parallelism",
			envVars: map[string]string{
				"TXSCAN_PARALLELISM": "0",
			},
			wantErr: true,
		},
		{
			name: "unknown format",
			envVars: map[string]string{
				"TXSCAN_FORMAT": "xml",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			// Set a non-existent config path to prevent loading user's config
			t.Setenv("TXSCAN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if tt.checkFunc != nil && cfg != nil {
					tt.checkFunc(t, cfg)
				}
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid config file",
			content: `
base_dir: "/srv/corpus"
transmissions:
  - "t1.txt"
  - "t2.txt.gz"
signatures:
  - "m1.txt"
format: yaml
trim_whitespace: true
parallelism: 2
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.BaseDir != "/srv/corpus" {
					t.Errorf("expected BaseDir to be /srv/corpus but got %s", cfg.BaseDir)
				}
				if len(cfg.Transmissions) != 2 || cfg.Transmissions[1] != "t2.txt.gz" {
					t.Errorf("unexpected transmissions %v", cfg.Transmissions)
				}
				if len(cfg.Signatures) != 1 {
					t.Errorf("expected 1 signature but got %d", len(cfg.Signatures))
				}
				if cfg.Format != FormatYAML {
					t.Errorf("expected Format to be yaml but got %s", cfg.Format)
				}
				if !cfg.TrimWhitespace {
					t.Error("expected TrimWhitespace to be true")
				}
				if cfg.Parallelism != 2 {
					t.Errorf("expected Parallelism to be 2 but got %d", cfg.Parallelism)
				}
				// untouched keys keep their defaults
				if cfg.MaxInputBytes != 16<<20 {
					t.Errorf("expected default MaxInputBytes but got %d", cfg.MaxInputBytes)
				}
			},
		},
		{
			name:    "environment overrides file",
			content: "format: yaml\n",
			envVars: map[string]string{"TXSCAN_FORMAT": "json"},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.Format != FormatJSON {
					t.Errorf("expected Format to be json but got %s", cfg.Format)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: "invalid: yaml: content:\n  bad indentation",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			configPath := filepath.Join(tmpDir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}
			t.Setenv("TXSCAN_CONFIG", configPath)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if tt.checkFunc != nil && cfg != nil {
					tt.checkFunc(t, cfg)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return DefaultConfig() }

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		errorMsg string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:     "no transmissions",
			mutate:   func(c *Config) { c.Transmissions = nil },
			wantErr:  true,
			errorMsg: "at least one transmission",
		},
		{
			name:    "no signatures is allowed",
			mutate:  func(c *Config) { c.Signatures = nil },
			wantErr: false,
		},
		{
			name:     "bad format",
			mutate:   func(c *Config) { c.Format = "csv" },
			wantErr:  true,
			errorMsg: "format must be one of",
		},
		{
			name:     "zero size limit",
			mutate:   func(c *Config) { c.MaxInputBytes = 0 },
			wantErr:  true,
			errorMsg: "max_input_bytes",
		},
		{
			name:     "warning alias is rejected",
			mutate:   func(c *Config) { c.LogLevel = "warning" },
			wantErr:  true,
			errorMsg: "log_level",
		},
		{
			name:     "bad log level",
			mutate:   func(c *Config) { c.LogLevel = "loud" },
			wantErr:  true,
			errorMsg: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if tt.errorMsg != "" && !contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q but got %q", tt.errorMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantContain string
	}{
		{
			name: "explicit config path",
			envVars: map[string]string{
				"TXSCAN_CONFIG": "/custom/path/config.yaml",
			},
			wantContain: "/custom/path/config.yaml",
		},
		{
			name: "XDG config path",
			envVars: map[string]string{
				"XDG_CONFIG_HOME": "/xdg/config",
			},
			wantContain: "/xdg/config/txscan/config.yaml",
		},
		{
			name:        "home directory fallback",
			envVars:     map[string]string{},
			wantContain: ".config/txscan/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TXSCAN_CONFIG", "")
			t.Setenv("XDG_CONFIG_HOME", "")

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := getConfigPath()
			if !contains(path, tt.wantContain) {
				t.Errorf("expected path to contain %q but got %q", tt.wantContain, path)
			}
		})
	}
}

// Helper function
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
