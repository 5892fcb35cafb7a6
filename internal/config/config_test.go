package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultValues(t *testing.T) {
	// Clear all relevant environment variables for clean test
	envVars := []string{
		"STRIPE_API_BASE_URL", "SERVICE_NAME", "SERVICE_VERSION",
		"PORT", "HEALTH_ENABLED",
	}

	originalValues := make(map[string]string)
	for _, envVar := range envVars {
		originalValues[envVar] = os.Getenv(envVar)
		_ = os.Unsetenv(envVar)
	}
	defer func() {
		// Restore original environment
		for envVar, value := range originalValues {
			if value != "" {
				_ = os.Setenv(envVar, value)
			} else {
				_ = os.Unsetenv(envVar)
			}
		}
	}()

	config := Load()

	// Test default values
	assert.Equal(t, "https://api.stripe.com", config.Stripe.BaseURL)
	assert.Equal(t, APIVersion, config.Stripe.APIVersion)
	assert.Equal(t, "stripe-mcp", config.Server.Name)
	assert.Equal(t, "dev", config.Server.Version)
	assert.Equal(t, "3000", config.Server.Port)
	assert.False(t, config.Server.HealthEnabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	testValues := map[string]string{
		"STRIPE_API_BASE_URL": "https://stripe.example.com",
		"SERVICE_NAME":        "stripe-mcp-staging",
		"SERVICE_VERSION":     "1.2.3",
		"PORT":                "8080",
		"HEALTH_ENABLED":      "true",
	}

	originalValues := make(map[string]string)
	for key, value := range testValues {
		originalValues[key] = os.Getenv(key)
		_ = os.Setenv(key, value)
	}
	defer func() {
		for key, value := range originalValues {
			if value != "" {
				_ = os.Setenv(key, value)
			} else {
				_ = os.Unsetenv(key)
			}
		}
	}()

	config := Load()

	assert.Equal(t, "https://stripe.example.com", config.Stripe.BaseURL)
	assert.Equal(t, "stripe-mcp-staging", config.Server.Name)
	assert.Equal(t, "1.2.3", config.Server.Version)
	assert.Equal(t, "8080", config.Server.Port)
	assert.True(t, config.Server.HealthEnabled)
}

func TestConfig_AccountsReadsEnvironmentFresh(t *testing.T) {
	original := os.Getenv("STRIPE_ROTATED_ACCOUNT_API_KEY")
	defer func() {
		if original != "" {
			_ = os.Setenv("STRIPE_ROTATED_ACCOUNT_API_KEY", original)
		} else {
			_ = os.Unsetenv("STRIPE_ROTATED_ACCOUNT_API_KEY")
		}
	}()

	cfg := Load()

	_ = os.Unsetenv("STRIPE_ROTATED_ACCOUNT_API_KEY")
	assert.False(t, cfg.Accounts().Has("rotated_account"))

	// A key set after Load is picked up on the next extraction
	_ = os.Setenv("STRIPE_ROTATED_ACCOUNT_API_KEY", "rk_test_rotated")
	assert.True(t, cfg.Accounts().Has("rotated_account"))
}
