package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the analysis client.
type Config struct {
	// BaseURL is the address of the remote analysis service.
	BaseURL string

	// PollInterval is the cadence of status requests for a running job.
	PollInterval time.Duration

	// JobDeadline is the wall-clock budget for one job to reach a terminal state.
	JobDeadline time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BaseURL:      getEnvOrDefault("ANALYSIS_API_URL", "http://localhost:8000"),
		PollInterval: getDurationOrDefault("ANALYSIS_POLL_INTERVAL", DefaultPollInterval),
		JobDeadline:  getDurationOrDefault("ANALYSIS_JOB_DEADLINE", DefaultJobDeadline),
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDurationOrDefault parses a duration environment variable, ignoring bad values
func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
