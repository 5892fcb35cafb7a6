package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/query"
	"github.com/revops-tools/stripe-mcp/internal/stripe"
)

// ListInvoicesTool lists invoices with cursor pagination
type ListInvoicesTool struct {
	cfg *config.Config
}

// NewListInvoicesTool creates the list_invoices tool
func NewListInvoicesTool(cfg *config.Config) *ListInvoicesTool {
	return &ListInvoicesTool{cfg: cfg}
}

func (t *ListInvoicesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_invoices",
		mcp.WithDescription("List Stripe invoices across one or all configured accounts, optionally filtered by customer, status, or subscription."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("customer", mcp.Description("Customer id (cus_...) the invoices belong to")),
		mcp.WithString("status", mcp.Description("Invoice status (draft, open, paid, uncollectible, void)")),
		mcp.WithString("subscription", mcp.Description("Subscription id (sub_...) the invoices were generated by")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default: driver-managed)")),
		mcp.WithString("starting_after", mcp.Description("Cursor: invoice id to continue after")),
		mcp.WithString("ending_before", mcp.Description("Cursor: invoice id to page backwards from")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *ListInvoicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := pageArgs(req)
	if !validLimit(page.Limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.InvoiceFilters{
		Customer:     req.GetString("customer", ""),
		Status:       req.GetString("status", ""),
		Subscription: req.GetString("subscription", ""),
	}

	op := listOperation(stripe.ResourceInvoices, "invoices", page, req.GetBool("fetch_all", false),
		func(pp query.PageParams) url.Values {
			return query.InvoiceListParams(filters, pp)
		})

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// SearchInvoicesTool searches invoices with Stripe's query language
type SearchInvoicesTool struct {
	cfg *config.Config
}

// NewSearchInvoicesTool creates the search_invoices tool
func NewSearchInvoicesTool(cfg *config.Config) *SearchInvoicesTool {
	return &SearchInvoicesTool{cfg: cfg}
}

func (t *SearchInvoicesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_invoices",
		mcp.WithDescription("Search Stripe invoices by number, customer, status, subscription, total, or created range across one or all configured accounts. At least one filter is required; use list_invoices for unfiltered listings."),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithString("customer", mcp.Description("Exact customer id (cus_...)")),
		mcp.WithString("status", mcp.Description("Exact invoice status")),
		mcp.WithString("subscription", mcp.Description("Exact subscription id (sub_...)")),
		mcp.WithString("number", mcp.Description("Exact invoice number (e.g. F9E6E846-0001)")),
		mcp.WithNumber("total", mcp.Description("Exact invoice total in minor currency units (e.g. cents)")),
		mcp.WithNumber("created_after", mcp.Description("Only invoices created at or after this unix timestamp")),
		mcp.WithNumber("created_before", mcp.Description("Only invoices created at or before this unix timestamp")),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100")),
		mcp.WithString("page", mcp.Description("Continuation token from a prior search page")),
		mcp.WithBoolean("fetch_all", mcp.Description("Traverse every page instead of stopping at the result cap")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *SearchInvoicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)
	if !validLimit(limit) {
		return mcp.NewToolResultError("limit must be between 1 and 100"), nil
	}

	filters := query.InvoiceFilters{
		Customer:      req.GetString("customer", ""),
		Status:        req.GetString("status", ""),
		Subscription:  req.GetString("subscription", ""),
		Number:        req.GetString("number", ""),
		Total:         int64(req.GetInt("total", 0)),
		CreatedAfter:  int64(req.GetInt("created_after", 0)),
		CreatedBefore: int64(req.GetInt("created_before", 0)),
	}

	searchQuery, err := query.InvoiceSearchQuery(filters)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := searchOperation(stripe.ResourceInvoices, "invoices", searchQuery,
		limit, req.GetString("page", ""), req.GetBool("fetch_all", false))

	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}

// GetInvoiceTool retrieves one invoice by id
type GetInvoiceTool struct {
	cfg *config.Config
}

// NewGetInvoiceTool creates the get_invoice tool
func NewGetInvoiceTool(cfg *config.Config) *GetInvoiceTool {
	return &GetInvoiceTool{cfg: cfg}
}

func (t *GetInvoiceTool) Definition() mcp.Tool {
	return mcp.NewTool("get_invoice",
		mcp.WithDescription("Retrieve a single Stripe invoice by id from one or all configured accounts."),
		mcp.WithString("invoice_id", mcp.Required(), mcp.Description("Invoice id (in_...)")),
		mcp.WithString("account", mcp.Description("Account name to target, or 'all' to fan out to every configured account (default: all)")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *GetInvoiceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoice_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := getOperation(stripe.ResourceInvoices, "invoice", invoiceID)
	outcomes := dispatcherFor(t.cfg).Execute(ctx, accountArg(req), op)
	return respond(outcomes)
}
