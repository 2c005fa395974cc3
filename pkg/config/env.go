package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Helpers for standalone tools that read a handful of variables without
// the full App config.

// EnvOr returns the trimmed value of key, or fallback when it is unset or blank.
func EnvOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// EnvList splits a comma separated variable, dropping empty entries.
func EnvList(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(EnvOr(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EnvDuration parses key as a time.Duration. Unparsable or non-positive
// values are logged and replaced by fallback.
func EnvDuration(key string, fallback time.Duration) time.Duration {
	v := EnvOr(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Default().Warn("Ignoring invalid duration", "key", key, "value", v)
		return fallback
	}
	return d
}
