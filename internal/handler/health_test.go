package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revops-tools/stripe-mcp/internal/config"
)

func clearAccountEnv(t *testing.T) {
	t.Helper()

	for _, entry := range os.Environ() {
		name, _, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, "STRIPE_") || !strings.HasSuffix(name, "_ACCOUNT_API_KEY") {
			continue
		}
		original := os.Getenv(name)
		_ = os.Unsetenv(name)
		t.Cleanup(func() { _ = os.Setenv(name, original) })
	}
}

func setAccountKey(t *testing.T, name, key string) {
	t.Helper()

	envName := "STRIPE_" + name + "_ACCOUNT_API_KEY"
	original := os.Getenv(envName)
	require.NoError(t, os.Setenv(envName, key))
	t.Cleanup(func() {
		if original != "" {
			_ = os.Setenv(envName, original)
		} else {
			_ = os.Unsetenv(envName)
		}
	})
}

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	h := NewHealthHandler(cfg)
	app.Get("/health", h.HandleHealth)
	app.Get("/readyz", h.HandleReady)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&parsed))
	return parsed
}

func TestHandleHealth(t *testing.T) {
	clearAccountEnv(t)
	setAccountKey(t, "ACME", "rk_test_123")

	app := testApp(config.Load())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	parsed := decodeBody(t, resp.Body)
	assert.Equal(t, "healthy", parsed["status"])
	assert.Equal(t, "stripe-mcp", parsed["service"])
	assert.Equal(t, config.APIVersion, parsed["api_version"])
	assert.Equal(t, float64(1), parsed["accounts"])
}

func TestHandleReady(t *testing.T) {
	clearAccountEnv(t)
	setAccountKey(t, "ACME", "rk_live_123")
	setAccountKey(t, "OTHER", "rk_test_456")

	app := testApp(config.Load())

	resp, err := app.Test(httptest.NewRequest("GET", "/readyz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	parsed := decodeBody(t, resp.Body)
	assert.Equal(t, true, parsed["ready"])
	assert.Equal(t, float64(2), parsed["accounts"])
}

func TestHandleReady_NoAccounts(t *testing.T) {
	clearAccountEnv(t)

	app := testApp(config.Load())

	resp, err := app.Test(httptest.NewRequest("GET", "/readyz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 503, resp.StatusCode)

	parsed := decodeBody(t, resp.Body)
	assert.Equal(t, false, parsed["ready"])
	assert.Contains(t, parsed["reason"], "no Stripe accounts")
}
