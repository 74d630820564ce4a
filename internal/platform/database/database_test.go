package database_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/database"
	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

func memoryConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             "file::memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}
}

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	db, err := database.Open(memoryConfig(), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}

	hc := database.NewHealthChecker(db)
	if hc.Name() != "database" {
		t.Errorf("Name() = %q, want %q", hc.Name(), "database")
	}
	if err := hc.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Driver = "oracle"

	if _, err := database.Open(cfg, nil); err == nil {
		t.Fatal("Open(oracle) error = nil, want error")
	}
}

func TestHealthCheck_ClosedPool(t *testing.T) {
	t.Parallel()

	db, err := database.Open(memoryConfig(), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := database.Close(db); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := database.NewHealthChecker(db).HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() on closed pool = nil, want error")
	}
}

func TestLogger_Trace(t *testing.T) {
	t.Parallel()

	sql := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		slow    time.Duration
		begin   time.Time
		err     error
		want    string
		wantLvl string
	}{
		{
			name:    "failure logs at error",
			begin:   time.Now(),
			err:     errors.New("syntax error"),
			want:    "sql statement failed",
			wantLvl: "ERROR",
		},
		{
			name:    "slow statement logs at warn",
			slow:    time.Millisecond,
			begin:   time.Now().Add(-time.Second),
			want:    "slow sql statement",
			wantLvl: "WARN",
		},
		{
			name:    "record not found is not an error",
			begin:   time.Now(),
			err:     gorm.ErrRecordNotFound,
			want:    "sql statement",
			wantLvl: "DEBUG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := database.NewLogger(logging.New("debug", "json", &buf), tt.slow)

			l.Trace(context.Background(), tt.begin, sql, tt.err)

			out := buf.String()
			if !strings.Contains(out, `"msg":"`+tt.want+`"`) {
				t.Errorf("output = %q, want msg %q", out, tt.want)
			}
			if !strings.Contains(out, `"level":"`+tt.wantLvl+`"`) {
				t.Errorf("output = %q, want level %s", out, tt.wantLvl)
			}
		})
	}
}

func TestLogger_SilentMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := database.NewLogger(logging.New("debug", "json", &buf), 0).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestLogger_PrefersContextLogger(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	l := database.NewLogger(logging.New("debug", "json", &base), 0)

	ctx := logging.WithLogger(context.Background(),
		logging.New("debug", "json", &scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	if base.Len() != 0 {
		t.Errorf("base logger wrote %q, want nothing", base.String())
	}
	if !strings.Contains(scoped.String(), `"request_id":"req-1"`) {
		t.Errorf("scoped output = %q, want request_id", scoped.String())
	}
}
