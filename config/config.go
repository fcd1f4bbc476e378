// Package config provides runtime configuration for the service.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service knobs. The dataset parameters are read once at
// startup; changing them requires a restart since the dataset is immutable.
type Config struct {
	HTTPAddr        string
	DatasetSize     int
	DatasetSeed     int64
	ShutdownTimeout time.Duration
}

// Load collects configuration from the environment with defaults, honoring a
// local .env file when present.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		DatasetSize:     atoienv("DATASET_SIZE", 50),
		DatasetSeed:     int64(atoienv("DATASET_SEED", 2025)),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT", 15)) * time.Second,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
