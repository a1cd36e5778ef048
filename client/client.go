package client

import (
	"net/http"
	"os"

	"vidsense/config"
)

// AnalysisClient is a thin typed HTTP client for the video analysis service.
// It performs single round trips only; retry and cadence policy live in the
// polling controller, not here.
type AnalysisClient struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
}

// NewAnalysisClient creates a new analysis service client
func NewAnalysisClient(baseURL string) *AnalysisClient {
	if baseURL == "" {
		baseURL = getEnvOrDefault("ANALYSIS_API_URL", "http://localhost:8000")
	}
	return &AnalysisClient{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: config.RequestTimeout},
		uploadClient: &http.Client{Timeout: config.UploadTimeout},
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
