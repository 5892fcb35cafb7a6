package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/query"
	"github.com/revops-tools/stripe-mcp/internal/stripe"
)

// ListCustomersTool lists customers with cursor pagination
type ListCustomersTool struct {
	cfg *config.Config
}

// NewListCustomersTool creates the list_customers tool
func NewListCustomersTool(cfg *config.Config) *ListCustomersTool {
	return &ListCustomersTool{cfg: cfg}
}

func (t *ListCustomersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_customers",
		mcp.WithDescription("List Stripe customers across one or all configured accounts. Filters are exact-match; use search_customers for fuzzy name/email lookups."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("email", mcp.Description("Exact customer email to filter by")),
		mcp.WithNumber("created_after", mcp.Description("Only customers created at or after this unix timestamp")),
		mcp.WithNumber("created_before", mcp.Description("Only customers created at or before this unix timestamp")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default: driver-managed)")),
		mcp.WithString("starting_after", mcp.Description("Cursor: customer id to continue after")),
		mcp.WithString("ending_before", mcp.Description("Cursor: customer id to page backwards from")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListCustomersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := pageArgs(req)
	if !validLimit(page.Limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.CustomerFilters{
		Email:         req.GetString("email", ""),
		CreatedAfter:  int64(req.GetInt("created_after", 0)),
		CreatedBefore: int64(req.GetInt("created_before", 0)),
	}

	op := listOperation(stripe.ResourceCustomers, "customers", page, req.GetBool("fetch_all", false),
		func(pp query.PageParams) url.Values {
			return query.CustomerListParams(filters, pp)
		})

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// SearchCustomersTool searches customers with Stripe's query language
type SearchCustomersTool struct {
	cfg *config.Config
}

// NewSearchCustomersTool creates the search_customers tool
func NewSearchCustomersTool(cfg *config.Config) *SearchCustomersTool {
	return &SearchCustomersTool{cfg: cfg}
}

func (t *SearchCustomersTool) Definition() mcp.Tool {
	return mcp.NewTool("search_customers",
		mcp.WithDescription("Search Stripe customers by fuzzy name/email match across one or all configured accounts. At least one filter is required; use list_customers for unfiltered listings."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("name", mcp.Description("Substring match on customer name")),
		mcp.WithString("email", mcp.Description("Substring match on customer email")),
		mcp.WithNumber("created_after", mcp.Description("Only customers created at or after this unix timestamp")),
		mcp.WithNumber("created_before", mcp.Description("Only customers created at or before this unix timestamp")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100")),
		mcp.WithString("page", mcp.Description("Continuation token from a prior search page")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *SearchCustomersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)
	if !validLimit(limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.CustomerFilters{
		Name:          req.GetString("name", ""),
		Email:         req.GetString("email", ""),
		CreatedAfter:  int64(req.GetInt("created_after", 0)),
		CreatedBefore: int64(req.GetInt("created_before", 0)),
	}

	searchQuery, err := query.CustomerSearchQuery(filters)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := searchOperation(stripe.ResourceCustomers, "customers", searchQuery,
		limit, req.GetString("page", ""), req.GetBool("fetch_all", false))

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// GetCustomerTool retrieves one customer by id
type GetCustomerTool struct {
	cfg *config.Config
}

// NewGetCustomerTool creates the get_customer tool
func NewGetCustomerTool(cfg *config.Config) *GetCustomerTool {
	return &GetCustomerTool{cfg: cfg}
}

func (t *GetCustomerTool) Definition() mcp.Tool {
	return mcp.NewTool("get_customer",
		mcp.WithDescription("Retrieve a single Stripe customer by id from one or all configured accounts."),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer id (cus_...)")),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *GetCustomerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := req.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := getOperation(stripe.ResourceCustomers, "customer", customerID)
	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}
