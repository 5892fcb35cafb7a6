package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/handler"
	"github.com/revops-tools/stripe-mcp/internal/logging"
	"github.com/revops-tools/stripe-mcp/internal/server"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	registry := cfg.Accounts()
	if registry.Len() == 0 {
		logging.Warn("No Stripe accounts configured - set STRIPE_<NAME>_ACCOUNT_API_KEY variables with restricted keys")
	} else {
		logging.Info("Configured with %d Stripe account(s), API version %s", registry.Len(), cfg.Stripe.APIVersion)
	}

	// Optional HTTP health sidecar next to the stdio transport
	if cfg.Server.HealthEnabled {
		go serveHealth(cfg)
	}

	logging.Info("Starting %s MCP server on stdio", cfg.Server.Name)

	s := server.New(cfg)
	if err := mcpserver.ServeStdio(s); err != nil {
		logging.GetLogger().Sync()
		log.Fatalf("MCP server terminated: %v", err)
	}
	logging.GetLogger().Sync()
}

// serveHealth runs the fiber health endpoints. Failures here are logged but
// never take the MCP transport down with them.
func serveHealth(cfg *config.Config) {
	healthHandler := handler.NewHealthHandler(cfg)

	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.Name,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logging.Error("Health endpoint error: %v", err)
			return c.Status(500).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Get("/health", healthHandler.HandleHealth)
	app.Get("/readyz", healthHandler.HandleReady)

	logging.Info("Health sidecar listening on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logging.Error("Health sidecar stopped: %v", err)
	}
}
