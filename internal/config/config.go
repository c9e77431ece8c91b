package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the score service and its clients.
type Config struct {
	Port          string
	MaxDeltaBytes int64
	CORSOrigins   []string
	DefaultsFile  string
	Clients       ClientConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (or ENV_FILE) is applied first without overriding variables
// that are already set.
func Load() Config {
	_ = loadEnvFile(envOrDefault(envEnvFile, defaultEnvFile))

	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		MaxDeltaBytes: sizeEnvOrDefault(envMaxDeltaBytes, defaultMaxDeltaBytes),
		CORSOrigins:   listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		DefaultsFile:  envOrDefault(envDefaultsFile, ""),
		Clients:       loadClients(),
		Metrics:       loadMetrics(),
	}
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
