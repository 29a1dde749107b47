package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.Client.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *Config) { cfg.Client.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:   "trace logging level",
			mutate: func(cfg *Config) { cfg.Logging.Level = "trace" },
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:   "presets with expressions",
			mutate: func(cfg *Config) { cfg.Presets = PresetConfig{"contenders": "Points > 90"} },
		},
		{
			name:    "preset with empty expression",
			mutate:  func(cfg *Config) { cfg.Presets = PresetConfig{"broken": ""} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Client: ClientConfig{
					Timeout:         10 * time.Second,
					TLSVerify:       true,
					FollowRedirects: true,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `client:
  timeout: 5s
  tls_verify: false
logging:
  level: debug
presets:
  contenders: "Points > 90"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Client.Timeout)
	}
	if cfg.Client.TLSVerify {
		t.Error("TLSVerify = true, want false")
	}
	if !cfg.Client.FollowRedirects {
		t.Error("FollowRedirects = false, want default true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %s, want default console", cfg.Logging.Format)
	}
	if cfg.Presets["contenders"] != "Points > 90" {
		t.Errorf("Presets = %v, want contenders preset", cfg.Presets)
	}
}
