package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/query"
	"github.com/revops-tools/stripe-mcp/internal/stripe"
)

// ListSubscriptionsTool lists subscriptions with cursor pagination
type ListSubscriptionsTool struct {
	cfg *config.Config
}

// NewListSubscriptionsTool creates the list_subscriptions tool
func NewListSubscriptionsTool(cfg *config.Config) *ListSubscriptionsTool {
	return &ListSubscriptionsTool{cfg: cfg}
}

func (t *ListSubscriptionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_subscriptions",
		mcp.WithDescription("List Stripe subscriptions across one or all configured accounts, optionally filtered by customer, status, or price."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("customer", mcp.Description("Customer id (cus_...) the subscriptions belong to")),
		mcp.WithString("status", mcp.Description("Subscription status (active, past_due, canceled, trialing, ...)")),
		mcp.WithString("price", mcp.Description("Price id (price_...) the subscriptions are for")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default: driver-managed)")),
		mcp.WithString("starting_after", mcp.Description("Cursor: subscription id to continue after")),
		mcp.WithString("ending_before", mcp.Description("Cursor: subscription id to page backwards from")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListSubscriptionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := pageArgs(req)
	if !validLimit(page.Limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.SubscriptionFilters{
		Customer: req.GetString("customer", ""),
		Status:   req.GetString("status", ""),
		Price:    req.GetString("price", ""),
	}

	op := listOperation(stripe.ResourceSubscriptions, "subscriptions", page, req.GetBool("fetch_all", false),
		func(pp query.PageParams) url.Values {
			return query.SubscriptionListParams(filters, pp)
		})

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// SearchSubscriptionsTool searches subscriptions with Stripe's query language
type SearchSubscriptionsTool struct {
	cfg *config.Config
}

// NewSearchSubscriptionsTool creates the search_subscriptions tool
func NewSearchSubscriptionsTool(cfg *config.Config) *SearchSubscriptionsTool {
	return &SearchSubscriptionsTool{cfg: cfg}
}

func (t *SearchSubscriptionsTool) Definition() mcp.Tool {
	return mcp.NewTool("search_subscriptions",
		mcp.WithDescription("Search Stripe subscriptions by exact customer/status/price predicates across one or all configured accounts. At least one filter is required; use list_subscriptions for unfiltered listings."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("customer", mcp.Description("Exact customer id (cus_...)")),
		mcp.WithString("status", mcp.Description("Exact subscription status")),
		mcp.WithString("price", mcp.Description("Exact price id (price_...)")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100")),
		mcp.WithString("page", mcp.Description("Continuation token from a prior search page")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *SearchSubscriptionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)
	if !validLimit(limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.SubscriptionFilters{
		Customer: req.GetString("customer", ""),
		Status:   req.GetString("status", ""),
		Price:    req.GetString("price", ""),
	}

	searchQuery, err := query.SubscriptionSearchQuery(filters)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := searchOperation(stripe.ResourceSubscriptions, "subscriptions", searchQuery,
		limit, req.GetString("page", ""), req.GetBool("fetch_all", false))

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// GetSubscriptionTool retrieves one subscription by id
type GetSubscriptionTool struct {
	cfg *config.Config
}

// NewGetSubscriptionTool creates the get_subscription tool
func NewGetSubscriptionTool(cfg *config.Config) *GetSubscriptionTool {
	return &GetSubscriptionTool{cfg: cfg}
}

func (t *GetSubscriptionTool) Definition() mcp.Tool {
	return mcp.NewTool("get_subscription",
		mcp.WithDescription("Retrieve a single Stripe subscription by id from one or all configured accounts."),
		mcp.WithString("subscription_id", mcp.Required(), mcp.Description("Subscription id (sub_...)")),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *GetSubscriptionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	subscriptionID, err := req.RequireString("subscription_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := getOperation(stripe.ResourceSubscriptions, "subscription", subscriptionID)
	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}
