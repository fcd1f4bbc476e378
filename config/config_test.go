package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DATASET_SIZE", "DATASET_SEED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DatasetSize != 50 {
		t.Errorf("DatasetSize = %d, want 50", cfg.DatasetSize)
	}
	if cfg.DatasetSeed != 2025 {
		t.Errorf("DatasetSeed = %d, want 2025", cfg.DatasetSeed)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DATASET_SIZE", "120")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" || cfg.DatasetSize != 120 || cfg.DatasetSeed != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DATASET_SIZE", "muchos")
	cfg := Load()
	if cfg.DatasetSize != 50 {
		t.Errorf("DatasetSize = %d, want the 50 default", cfg.DatasetSize)
	}
}
