package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Stripe StripeConfig
	Server ServerConfig
}

// StripeConfig holds Stripe API configuration shared by every account client
type StripeConfig struct {
	BaseURL    string // Stripe API base URL (overridable for tests)
	APIVersion string // Pinned Stripe-Version header sent on every request
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Name          string
	Version       string
	Port          string
	HealthEnabled bool // serve the HTTP health sidecar alongside stdio
}

// APIVersion is the Stripe API version this server is built against. Pinned
// once here and passed unchanged on every client construction.
const APIVersion = "2025-02-24.acacia"

// DefaultBaseURL is the production Stripe API endpoint.
const DefaultBaseURL = "https://api.stripe.com"

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Stripe: StripeConfig{
			BaseURL:    getEnv("STRIPE_API_BASE_URL", DefaultBaseURL),
			APIVersion: APIVersion,
		},
		Server: ServerConfig{
			Name:          getEnv("SERVICE_NAME", "stripe-mcp"),
			Version:       getEnv("SERVICE_VERSION", "dev"),
			Port:          getEnv("PORT", "3000"),
			HealthEnabled: getEnv("HEALTH_ENABLED", "false") == "true",
		},
	}
}

// Accounts extracts the account registry from the current process environment.
// Re-read on every top-level invocation so rotated keys are picked up without
// a restart.
func (c *Config) Accounts() *AccountRegistry {
	return ExtractAccounts(os.Environ())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
