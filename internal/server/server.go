// Package server wires the MCP server and registers every tool. This is the
// composition root: concrete dependencies are created here and injected into
// the tools, no business logic lives in this package.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/logging"
	"github.com/revops-tools/stripe-mcp/internal/tools"
)

// New creates and configures the MCP server with all tools registered
func New(cfg *config.Config) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	listAccounts := tools.NewListAccountsTool(cfg)
	s.AddTool(listAccounts.Definition(), listAccounts.Handle)

	listCustomers := tools.NewListCustomersTool(cfg)
	s.AddTool(listCustomers.Definition(), listCustomers.Handle)

	searchCustomers := tools.NewSearchCustomersTool(cfg)
	s.AddTool(searchCustomers.Definition(), searchCustomers.Handle)

	getCustomer := tools.NewGetCustomerTool(cfg)
	s.AddTool(getCustomer.Definition(), getCustomer.Handle)

	listSubscriptions := tools.NewListSubscriptionsTool(cfg)
	s.AddTool(listSubscriptions.Definition(), listSubscriptions.Handle)

	searchSubscriptions := tools.NewSearchSubscriptionsTool(cfg)
	s.AddTool(searchSubscriptions.Definition(), searchSubscriptions.Handle)

	getSubscription := tools.NewGetSubscriptionTool(cfg)
	s.AddTool(getSubscription.Definition(), getSubscription.Handle)

	listInvoices := tools.NewListInvoicesTool(cfg)
	s.AddTool(listInvoices.Definition(), listInvoices.Handle)

	searchInvoices := tools.NewSearchInvoicesTool(cfg)
	s.AddTool(searchInvoices.Definition(), searchInvoices.Handle)

	getInvoice := tools.NewGetInvoiceTool(cfg)
	s.AddTool(getInvoice.Definition(), getInvoice.Handle)

	logging.Info("Registered %d MCP tools", 10)

	return s
}
