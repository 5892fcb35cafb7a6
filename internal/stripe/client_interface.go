package stripe

import (
	"context"
	"encoding/json"
	"net/url"
)

// StripeClient is an interface for read-only Stripe API operations against a
// single account. The dispatcher treats it as an opaque capability: one call,
// data or error. This interface allows for easy mocking in tests.
type StripeClient interface {
	// List fetches one cursor-paginated page of a resource collection.
	// params carries the structured filters plus limit/starting_after/
	// ending_before, already encoded by the query builder.
	List(ctx context.Context, resource Resource, params url.Values) (*ListPage, error)

	// Search fetches one token-paginated page of free-text search results
	// for the boolean query string built by the query builder.
	Search(ctx context.Context, resource Resource, query string, opts SearchOptions) (*SearchPage, error)

	// Get retrieves a single object by id
	Get(ctx context.Context, resource Resource, id string) (json.RawMessage, error)
}

// ClientFactory constructs an isolated client for a named account
type ClientFactory interface {
	ClientFor(account string) (StripeClient, error)
}

// Verify that Client implements StripeClient interface
var _ StripeClient = (*Client)(nil)
