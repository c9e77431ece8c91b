package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Every helper falls back to defaultValue when the variable is unset or
// does not parse; a misconfigured client should still reach the service.

func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault accepts Go duration strings such as "500ms" or "2s".
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// sizeEnvOrDefault reads a positive byte count.
func sizeEnvOrDefault(key string, defaultValue int64) int64 {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(envOrDefault(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

// listEnvOrDefault splits a comma separated value, dropping blank entries.
func listEnvOrDefault(key, defaultValue string) []string {
	parts := strings.Split(envOrDefault(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
