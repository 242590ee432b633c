// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and storage.
type Config struct {
	HTTPAddr         string
	DatabaseURL      string
	DatabaseName     string
	BcryptSaltRounds int
	ShutdownTimeout  time.Duration
	ConnectTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
//
// PORT takes precedence over HTTP_ADDR when set. An empty DATABASE_URL
// selects the in-memory stores. BCRYPT_SALT_ROUNDS is loaded for parity with
// the deployment environment; no current endpoint consumes it.
func Load() Config {
	addr := getenv("HTTP_ADDR", ":8080")
	if port := getenv("PORT", ""); port != "" {
		addr = ":" + port
	}
	return Config{
		HTTPAddr:         addr,
		DatabaseURL:      getenv("DATABASE_URL", ""),
		DatabaseName:     getenv("DATABASE_NAME", "bike-store"),
		BcryptSaltRounds: atoienv("BCRYPT_SALT_ROUNDS", 10),
		ShutdownTimeout:  durenvs("SHUTDOWN_TIMEOUT", 15),
		ConnectTimeout:   durenvs("MONGO_CONNECT_TIMEOUT", 10),
	}
}
