package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revops-tools/stripe-mcp/internal/config"
)

// HealthHandler handles health check requests for the HTTP sidecar
type HealthHandler struct {
	config *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{config: cfg}
}

// HandleHealth returns health status. Account names are intentionally not
// exposed here; only the count.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	registry := h.config.Accounts()
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"service":     h.config.Server.Name,
		"version":     h.config.Server.Version,
		"api_version": h.config.Stripe.APIVersion,
		"accounts":    registry.Len(),
	})
}

// HandleReady reports readiness: the server is ready when at least one
// account is registered.
func (h *HealthHandler) HandleReady(c *fiber.Ctx) error {
	registry := h.config.Accounts()
	if registry.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ready":  false,
			"reason": "no Stripe accounts configured",
		})
	}
	return c.JSON(fiber.Map{
		"ready":    true,
		"accounts": registry.Len(),
	})
}
