// Package tools defines the MCP tools this server exposes. Each tool parses
// its schema-validated arguments, builds a read-only operation from the query
// builder and pagination driver, and hands it to the multi-account
// dispatcher. No tool mutates anything in Stripe.
package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/revops-tools/stripe-mcp/internal/config"
	"github.com/revops-tools/stripe-mcp/internal/dispatch"
	"github.com/revops-tools/stripe-mcp/internal/pagination"
	"github.com/revops-tools/stripe-mcp/internal/query"
	"github.com/revops-tools/stripe-mcp/internal/stripe"
)

// maxLimit matches Stripe's per-page maximum
const maxLimit = 100

// dispatcherFor builds a fresh dispatcher for one invocation. The registry is
// re-extracted from the environment every time so rotated keys take effect
// without a restart.
func dispatcherFor(cfg *config.Config) *dispatch.Dispatcher {
	registry := cfg.Accounts()
	factory := stripe.NewFactory(cfg.Stripe, registry)
	return dispatch.New(registry, factory)
}

// respond serializes outcomes into the single-text-block envelope
func respond(outcomes []dispatch.Outcome) (*mcp.CallToolResult, error) {
	envelope, err := dispatch.FormatEnvelope(outcomes)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(envelope), nil
}

// accountArg reads the account selector, defaulting to fan-out
func accountArg(req mcp.CallToolRequest) string {
	return req.GetString("account", dispatch.AllAccounts)
}

// pageArgs reads the shared cursor pagination arguments
func pageArgs(req mcp.CallToolRequest) query.PageParams {
	return query.PageParams{
		Limit:         req.GetInt("limit", 0),
		StartingAfter: req.GetString("starting_after", ""),
		EndingBefore:  req.GetString("ending_before", ""),
	}
}

// validLimit reports whether an explicit limit is within Stripe's bounds
func validLimit(limit int) bool {
	return limit >= 0 && limit <= maxLimit
}

// traversalOptions maps user pagination intent onto driver options. An
// explicit limit bounds the result to exactly one page of that size;
// otherwise the driver's defaults apply.
func traversalOptions(p query.PageParams, fetchAll bool) pagination.Options {
	opts := pagination.Options{
		StartCursor: p.StartingAfter,
		FetchAll:    fetchAll,
	}
	if p.Limit > 0 && !fetchAll {
		opts.PageSize = p.Limit
		opts.Cap = p.Limit
	}
	return opts
}

// listOperation builds a dispatch operation that traverses a cursor-paginated
// listing. buildParams closes over the resource filters; the driver supplies
// the moving cursor and per-request limit.
func listOperation(resource stripe.Resource, label string, p query.PageParams, fetchAll bool,
	buildParams func(pp query.PageParams) url.Values) dispatch.Operation {

	return func(ctx context.Context, client stripe.StripeClient) (*dispatch.OperationResult, error) {
		// Backward pagination is a single bounded page: traversal only
		// moves forward.
		if p.EndingBefore != "" {
			page, err := client.List(ctx, resource, buildParams(p))
			if err != nil {
				return nil, err
			}
			result := &pagination.Result{Items: page.Data, HasMore: page.HasMore}
			return &dispatch.OperationResult{
				Data:    page.Data,
				Message: pagination.Summarize(label, result),
				HasMore: page.HasMore,
			}, nil
		}

		fetch := func(ctx context.Context, cursor string, limit int) (*pagination.Page, error) {
			pp := p
			pp.Limit = limit
			pp.StartingAfter = cursor
			page, err := client.List(ctx, resource, buildParams(pp))
			if err != nil {
				return nil, err
			}
			return &pagination.Page{
				Items:      page.Data,
				NextCursor: page.LastID(),
				HasMore:    page.HasMore,
			}, nil
		}

		result, err := pagination.Collect(ctx, fetch, traversalOptions(p, fetchAll))
		if err != nil {
			return nil, err
		}
		return &dispatch.OperationResult{
			Data:     result.Items,
			Message:  pagination.Summarize(label, result),
			HasMore:  result.HasMore,
			NextPage: result.NextCursor,
		}, nil
	}
}

// searchOperation builds a dispatch operation that traverses token-paginated
// search results for a prebuilt boolean query.
func searchOperation(resource stripe.Resource, label, searchQuery string, limit int, page string, fetchAll bool) dispatch.Operation {
	return func(ctx context.Context, client stripe.StripeClient) (*dispatch.OperationResult, error) {
		fetch := func(ctx context.Context, cursor string, fetchLimit int) (*pagination.Page, error) {
			sp, err := client.Search(ctx, resource, searchQuery, stripe.SearchOptions{
				Limit: fetchLimit,
				Page:  cursor,
			})
			if err != nil {
				return nil, err
			}
			return &pagination.Page{
				Items:      sp.Data,
				NextCursor: sp.NextPage,
				HasMore:    sp.HasMore,
			}, nil
		}

		opts := traversalOptions(query.PageParams{Limit: limit, StartingAfter: page}, fetchAll)
		result, err := pagination.Collect(ctx, fetch, opts)
		if err != nil {
			return nil, err
		}
		return &dispatch.OperationResult{
			Data:     result.Items,
			Message:  pagination.Summarize(label, result),
			HasMore:  result.HasMore,
			NextPage: result.NextCursor,
		}, nil
	}
}

// getOperation builds a dispatch operation that retrieves one object by id
func getOperation(resource stripe.Resource, label, id string) dispatch.Operation {
	return func(ctx context.Context, client stripe.StripeClient) (*dispatch.OperationResult, error) {
		object, err := client.Get(ctx, resource, id)
		if err != nil {
			return nil, err
		}
		return &dispatch.OperationResult{
			Data:    json.RawMessage(object),
			Message: "Retrieved " + label + " " + id,
		}, nil
	}
}
