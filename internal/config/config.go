// Package config resolves process configuration from the environment once at
// startup. The resulting Config is passed by value into whatever needs it;
// nothing in the repo reads environment variables after Load returns.
package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultAPIBaseURL = "http://localhost:8080"

type Config struct {
	AppEnv   string
	LogLevel string
	AppPort  int

	// APIBaseURL is the Cryptotrade backend base URL with any trailing
	// slash stripped, so callers can concatenate "/path" directly.
	APIBaseURL string

	// UseAPIMocks routes every API call straight to the embedded fixtures
	// without touching the network. Only the literal string "true" enables it.
	UseAPIMocks bool
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AppPort:     getEnvInt("APP_PORT", 3000),
		APIBaseURL:  strings.TrimSuffix(getEnv("API_BASE_URL", defaultAPIBaseURL), "/"),
		UseAPIMocks: os.Getenv("USE_API_MOCKS") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
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
