package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateConfig points the loader at a missing config file so tests are not
// affected by a real config on the host.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GREPLINE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GREPLINE_FORMAT", "")
	t.Setenv("GREPLINE_HIGHLIGHT_COLOR", "")
	t.Setenv("GREPLINE_MAX_LINE_BYTES", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "default" {
		t.Errorf("expected Format to be default but got %s", cfg.Format)
	}
	if cfg.HighlightColor != "95" {
		t.Errorf("expected HighlightColor to be 95 but got %s", cfg.HighlightColor)
	}
	if cfg.MaxLineBytes != 1024*1024 {
		t.Errorf("expected MaxLineBytes to be 1MiB but got %d", cfg.MaxLineBytes)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("expected Verbosity to be 0 but got %d", cfg.Verbosity)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "default" || cfg.HighlightColor != "95" {
		t.Errorf("expected defaults but got %+v", cfg)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid environment variables",
			envVars: map[string]string{
				"GREPLINE_FORMAT":          "machine",
				"GREPLINE_HIGHLIGHT_COLOR": "31",
				"GREPLINE_MAX_LINE_BYTES":  "4096",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.Format != "machine" {
					t.Errorf("expected Format to be machine but got %s", cfg.Format)
				}
				if cfg.HighlightColor != "31" {
					t.Errorf("expected HighlightColor to be 31 but got %s", cfg.HighlightColor)
				}
				if cfg.MaxLineBytes != 4096 {
					t.Errorf("expected MaxLineBytes to be 4096 but got %d", cfg.MaxLineBytes)
				}
			},
		},
		{
			name: "unknown format",
			envVars: map[string]string{
				"GREPLINE_FORMAT": "json",
			},
			wantErr: true,
		},
		{
			name: "non-numeric highlight color",
			envVars: map[string]string{
				"GREPLINE_HIGHLIGHT_COLOR": "purple",
			},
			wantErr: true,
		},
		{
			name: "non-numeric line limit",
			envVars: map[string]string{
				"GREPLINE_MAX_LINE_BYTES": "lots",
			},
			wantErr: true,
		},
		{
			name: "non-positive line limit",
			envVars: map[string]string{
				"GREPLINE_MAX_LINE_BYTES": "0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "format: color\nhighlight_color: \"33\"\nmax_line_bytes: 2048\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("GREPLINE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "color" {
		t.Errorf("expected Format to be color but got %s", cfg.Format)
	}
	if cfg.HighlightColor != "33" {
		t.Errorf("expected HighlightColor to be 33 but got %s", cfg.HighlightColor)
	}
	if cfg.MaxLineBytes != 2048 {
		t.Errorf("expected MaxLineBytes to be 2048 but got %d", cfg.MaxLineBytes)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("format: color\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("GREPLINE_CONFIG", path)
	t.Setenv("GREPLINE_FORMAT", "underscore")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "underscore" {
		t.Errorf("expected env to override file but got %s", cfg.Format)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("format: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("GREPLINE_CONFIG", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for malformed YAML but got none")
	}
	if !strings.Contains(err.Error(), "config") {
		t.Errorf("expected a config error, got %q", err.Error())
	}
}
