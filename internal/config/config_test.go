package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_LOG_LEVEL",
		"ENGINE_TIMEOUT", "ENGINE_MAX_ITERATIONS", "ENGINE_NUM_PARALLEL_INSTANCES",
		"HISTORY_DB_HOST", "HISTORY_DB_PORT", "HISTORY_MAX_RECORDS",
	} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.App.Name != "classdivider" {
		t.Errorf("App.Name = %q, want classdivider", cfg.App.Name)
	}
	if cfg.Engine.MaxIterations != 300_000 {
		t.Errorf("Engine.MaxIterations = %d, want 300000", cfg.Engine.MaxIterations)
	}
	if cfg.Engine.NumParallelInstances != 0 {
		t.Errorf("Engine.NumParallelInstances = %d, want 0 (auto-detect)", cfg.Engine.NumParallelInstances)
	}
	if cfg.History.MaxRecords != 50 {
		t.Errorf("History.MaxRecords = %d, want 50", cfg.History.MaxRecords)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Errorf("expected default environment to be development, got env=%q", cfg.App.Env)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ENGINE_MAX_ITERATIONS", "750000")
	t.Setenv("ENGINE_TIMEOUT", "90s")
	t.Setenv("HISTORY_MAX_RECORDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Errorf("expected IsProduction() true with APP_ENV=production")
	}
	if cfg.Engine.MaxIterations != 750_000 {
		t.Errorf("Engine.MaxIterations = %d, want 750000", cfg.Engine.MaxIterations)
	}
	if cfg.Engine.DefaultTimeout != 90*time.Second {
		t.Errorf("Engine.DefaultTimeout = %v, want 90s", cfg.Engine.DefaultTimeout)
	}
	if cfg.History.MaxRecords != 10 {
		t.Errorf("History.MaxRecords = %d, want 10", cfg.History.MaxRecords)
	}
}

func TestHistoryConfig_DSN(t *testing.T) {
	cfg := HistoryConfig{
		Host: "db.internal", Port: 5432, User: "u", Password: "p", Name: "classdivider", SSLMode: "disable",
	}
	want := "host=db.internal port=5432 user=u password=p dbname=classdivider sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
