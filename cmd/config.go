package main

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration, read from the environment.
type Config struct {
	HTTPAddr        string
	HTTPPort        int
	MetricsPort     int
	ShutdownTimeout time.Duration
}

func loadConfig() Config {
	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", "0.0.0.0"),
		HTTPPort:        getEnvInt("HTTP_PORT", 8087),
		MetricsPort:     getEnvInt("METRICS_PORT", 8086),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
