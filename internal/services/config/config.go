package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://rtx.tecskill.com.br"

	envBaseURL = "RTX_BASE_URL"

	// EnvServiceToken names the variable holding the application service token.
	EnvServiceToken = "RTX_SERVICE_TOKEN"
)

// Config holds the backend connection settings. The service token identifies
// the client application to the backend; it is a deployment secret and is only
// ever read from the environment, never compiled in.
type Config struct {
	BaseURL      string
	ServiceToken string
}

// Load reads settings from the environment, with an optional .env file in the
// working directory.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      getEnv(envBaseURL, defaultBaseURL),
		ServiceToken: os.Getenv(EnvServiceToken),
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.ServiceToken == "" {
		return nil, eris.Errorf("%s is required", EnvServiceToken)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
