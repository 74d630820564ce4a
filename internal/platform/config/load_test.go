package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/platform/config"
)

// Tests that read ./configs chdir to the module root and therefore cannot
// run in parallel.

func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v, want debug text", cfg.Log)
				}
				if cfg.Database.Driver != "sqlite" || !cfg.Database.AutoMigrate {
					t.Errorf("Database = %s automigrate=%v, want sqlite with automigrate", cfg.Database.Driver, cfg.Database.AutoMigrate)
				}
				if cfg.Telemetry.Enabled {
					t.Error("Telemetry.Enabled = true, want false")
				}
			},
		},
		{
			profile: "dev",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Database.Driver != "postgres" {
					t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
				}
				if cfg.Telemetry.Exporter != "prometheus" {
					t.Errorf("Telemetry.Exporter = %q, want prometheus", cfg.Telemetry.Exporter)
				}
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
					t.Errorf("Log = %+v, want info json", cfg.Log)
				}
				if cfg.Database.Driver != "mysql" {
					t.Errorf("Database.Driver = %q, want mysql", cfg.Database.Driver)
				}
				if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
					t.Errorf("Telemetry = %+v, want otlp with an endpoint", cfg.Telemetry)
				}
				if cfg.Renderer.RateLimit.BurstSize != 2 {
					t.Errorf("Renderer.RateLimit.BurstSize = %d, want 2", cfg.Renderer.RateLimit.BurstSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir("../../..")

			cfg, err := config.Load(tt.profile)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.profile, err)
			}

			// Shared by every profile through base.yaml.
			if cfg.Server.Host != "0.0.0.0" {
				t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
			}
			if cfg.Renderer.Retry.MaxAttempts != 3 || cfg.Renderer.CircuitBreaker.MaxFailures != 5 {
				t.Errorf("Renderer = %+v, want base retry and breaker settings", cfg.Renderer)
			}
			if cfg.Renderer.MaxResponseBytes != 32<<20 {
				t.Errorf("Renderer.MaxResponseBytes = %d, want 32MiB", cfg.Renderer.MaxResponseBytes)
			}
			if cfg.App.ListWorkers != 8 {
				t.Errorf("App.ListWorkers = %d, want 8", cfg.App.ListWorkers)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(cfg *config.Config) bool
	}{
		{
			name: "top level", key: "APP_SERVER_PORT", value: "9090",
			check: func(cfg *config.Config) bool { return cfg.Server.Port == 9090 },
		},
		{
			name: "underscore in field name", key: "APP_SERVER_READ_TIMEOUT", value: "15s",
			check: func(cfg *config.Config) bool { return cfg.Server.ReadTimeout == 15*time.Second },
		},
		{
			name: "nested section", key: "APP_RENDERER_RETRY_MAX_ATTEMPTS", value: "7",
			check: func(cfg *config.Config) bool { return cfg.Renderer.Retry.MaxAttempts == 7 },
		},
		{
			name: "database pool", key: "APP_DATABASE_MAX_OPEN_CONNS", value: "3",
			check: func(cfg *config.Config) bool { return cfg.Database.MaxOpenConns == 3 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("%s=%s did not take effect: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9999\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir), config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Log.Level != "warn" || cfg.Server.Port != 9999 {
		t.Errorf("file values lost: level=%q port=%d", cfg.Log.Level, cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want default sqlite", cfg.Database.Driver)
	}
	if cfg.Renderer.RateLimit.RequestsPerSecond != 10 {
		t.Errorf("Renderer.RateLimit.RequestsPerSecond = %v, want default 10", cfg.Renderer.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "{}\n")
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "APP_DATABASE_DSN=file:from-dotenv.db\n")

	// t.Setenv restores the variable that godotenv sets on the process.
	t.Setenv("APP_DATABASE_DSN", "")
	if err := os.Unsetenv("APP_DATABASE_DSN"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("test", config.WithConfigDir(dir), config.WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Database.DSN != "file:from-dotenv.db" {
		t.Errorf("Database.DSN = %q, want value from .env", cfg.Database.DSN)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "server: [\n")
	writeFile(t, filepath.Join(dir, "bad.yaml"), "server:\n  port: 0\n")

	tests := []struct {
		profile string
		want    string
	}{
		{profile: "", want: "must not be empty"},
		{profile: "../etc", want: "path separators"},
		{profile: "a..b", want: "path traversal"},
		{profile: "missing", want: "missing.yaml"},
		{profile: "broken", want: "broken.yaml"},
		{profile: "bad", want: "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			_, err := config.Load(tt.profile, config.WithConfigDir(dir), config.WithEnvFile(""))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want mention of %q", tt.profile, err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   []string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:   "prometheus needs no endpoint",
			mutate: func(cfg *config.Config) { cfg.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "prometheus"} },
		},
		{name: "port", mutate: func(cfg *config.Config) { cfg.Server.Port = 0 }, want: []string{"server.port"}},
		{name: "log level", mutate: func(cfg *config.Config) { cfg.Log.Level = "verbose" }, want: []string{"log.level"}},
		{name: "driver", mutate: func(cfg *config.Config) { cfg.Database.Driver = "oracle" }, want: []string{"database.driver"}},
		{
			name:   "otlp without endpoint",
			mutate: func(cfg *config.Config) { cfg.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"} },
			want:   []string{"telemetry.endpoint"},
		},
		{
			name:   "negative body cap",
			mutate: func(cfg *config.Config) { cfg.Renderer.MaxResponseBytes = -1 },
			want:   []string{"renderer.max_response_bytes"},
		},
		{
			name: "errors aggregate",
			mutate: func(cfg *config.Config) {
				cfg.Database.DSN = ""
				cfg.App.ListWorkers = 0
				cfg.Renderer.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
			},
			want: []string{"database.dsn", "app.list_workers", "renderer.rate_limit.burst_size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want errors mentioning %v", tt.want)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("Validate() error %q does not mention %s", err, w)
				}
			}
		})
	}
}

// validBaseConfig returns a Config that passes Validate.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log:      config.LogConfig{Level: "info", Format: "json"},
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:", MaxOpenConns: 1},
		Renderer: config.ClientConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			RateLimit:      config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		App:       config.AppConfig{ListWorkers: 4},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
