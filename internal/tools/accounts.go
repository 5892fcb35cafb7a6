package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/dispatch"
)

// ListAccountsTool enumerates the configured accounts. Pure registry
// introspection: no Stripe call is made and no key material leaves the
// process, only names and key modes.
type ListAccountsTool struct {
	cfg *config.Config
}

// NewListAccountsTool creates the list_accounts tool
func NewListAccountsTool(cfg *config.Config) *ListAccountsTool {
	return &ListAccountsTool{cfg: cfg}
}

func (t *ListAccountsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_accounts",
		mcp.WithDescription("List the Stripe account names this server is configured with, and whether each uses a live or test key."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListAccountsTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	registry := t.cfg.Accounts()
	if registry.Len() == 0 {
		return mcp.NewToolResultText(dispatch.NoAccountsMessage), nil
	}

	type accountInfo struct {
		Name string `json:"name"`
		Mode string `json:"mode"`
	}

	accounts := make([]accountInfo, 0, registry.Len())
	for _, name := range registry.Names() {
		accounts = append(accounts, accountInfo{Name: name, Mode: registry.KeyMode(name)})
	}

	serialized, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(serialized)), nil
}
