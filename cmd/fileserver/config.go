package main

import (
	"os"
	"strconv"
	"time"
)

// config holds the demo server's runtime configuration.
type config struct {
	Addr        string
	Workers     int
	AssetsDir   string
	BindTimeout time.Duration
}

// loadConfig reads configuration from environment variables (or .env,
// loaded by main). All values have defaults; the demo runs with no setup.
func loadConfig() config {
	return config{
		Addr:        getEnv("ADDR", "127.0.0.1:7878"),
		Workers:     getEnvInt("WORKERS", 8),
		AssetsDir:   getEnv("ASSETS_DIR", "assets"),
		BindTimeout: getEnvDuration("BIND_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
