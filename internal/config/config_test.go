package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
source:
  url: https://listings.example.com/api/events
  limit: 250
  timeout_seconds: 30
  user_agent: meet-sync-test/1.0
db:
  url: postgres://meetsync@db.example.com:5432/meets
  password: secret
  table: meets
  max_conns: 4
retry:
  max_attempts: 5
  base_delay_seconds: 2
sync:
  write_delay_ms: 100
metrics:
  enabled: true
  port: 9999
logging:
  development: true
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source.Limit != 250 {
		t.Fatalf("expected source limit 250, got %d", cfg.Source.Limit)
	}
	if cfg.DB.URL != "postgres://meetsync@db.example.com:5432/meets" || cfg.DB.Password != "secret" {
		t.Fatalf("expected db settings to apply: %+v", cfg.DB)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Fatalf("expected 5 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != 9999 {
		t.Fatalf("expected metrics overrides to apply: %+v", cfg.Metrics)
	}
	if !cfg.Logging.Development {
		t.Fatalf("expected development logging")
	}
	if got := cfg.SourceTimeout(); got != 30*time.Second {
		t.Fatalf("expected source timeout 30s, got %v", got)
	}
	if got := cfg.RetryBaseDelay(); got != 2*time.Second {
		t.Fatalf("expected retry base delay 2s, got %v", got)
	}
	if got := cfg.WriteDelay(); got != 100*time.Millisecond {
		t.Fatalf("expected write delay 100ms, got %v", got)
	}
}

func TestLoadRequiresStoreCredentials(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
db:
  url: postgres://meetsync@db.example.com:5432/meets
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "db.password") {
		t.Fatalf("expected db.password error, got %v", err)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Source: SourceConfig{URL: "https://listings.example.com", TimeoutSeconds: 15},
		DB:     DBConfig{URL: "postgres://db", Password: "secret"},
		Retry:  RetryConfig{MaxAttempts: 3, BaseDelaySeconds: 1},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "missing source url",
			cfg: func() Config {
				c := base
				c.Source.URL = ""
				return c
			}(),
			want: "source.url",
		},
		{
			name: "invalid timeout",
			cfg: func() Config {
				c := base
				c.Source.TimeoutSeconds = 0
				return c
			}(),
			want: "source.timeout_seconds",
		},
		{
			name: "missing db url",
			cfg: func() Config {
				c := base
				c.DB.URL = ""
				return c
			}(),
			want: "db.url",
		},
		{
			name: "missing db password",
			cfg: func() Config {
				c := base
				c.DB.Password = ""
				return c
			}(),
			want: "db.password",
		},
		{
			name: "invalid retry attempts",
			cfg: func() Config {
				c := base
				c.Retry.MaxAttempts = 0
				return c
			}(),
			want: "retry.max_attempts",
		},
		{
			name: "negative write delay",
			cfg: func() Config {
				c := base
				c.Sync.WriteDelayMs = -1
				return c
			}(),
			want: "sync.write_delay_ms",
		},
		{
			name: "metrics enabled without port",
			cfg: func() Config {
				c := base
				c.Metrics.Enabled = true
				return c
			}(),
			want: "metrics.port",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
