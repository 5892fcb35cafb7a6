package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/revops-tools/stripe-mcp/internal/config"
	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

// Client handles Stripe API operations for one account. Each client is bound
// to a single restricted key and the pinned API version; nothing is shared
// across accounts.
type Client struct {
	baseURL    string
	apiVersion string
	key        string
	http       *http.Client
}

// NewClient creates a new Stripe API client bound to an account key
func NewClient(cfg config.StripeConfig, key string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: cfg.APIVersion,
		key:        key,
		http:       &http.Client{},
	}
}

// List fetches one page of a cursor-paginated resource listing
func (c *Client) List(ctx context.Context, resource Resource, params url.Values) (*ListPage, error) {
	body, err := c.get(ctx, "/v1/"+string(resource), params, "list "+string(resource))
	if err != nil {
		return nil, err
	}

	var page ListPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeAPIFailed,
			fmt.Sprintf("Failed to decode %s list response", resource), err)
	}
	return &page, nil
}

// Search fetches one page of token-paginated search results
func (c *Client) Search(ctx context.Context, resource Resource, query string, opts SearchOptions) (*SearchPage, error) {
	params := url.Values{}
	params.Set("query", query)
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Page != "" {
		params.Set("page", opts.Page)
	}

	body, err := c.get(ctx, "/v1/"+string(resource)+"/search", params, "search "+string(resource))
	if err != nil {
		return nil, err
	}

	var page SearchPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeAPIFailed,
			fmt.Sprintf("Failed to decode %s search response", resource), err)
	}
	return &page, nil
}

// Get retrieves a single object by id
func (c *Client) Get(ctx context.Context, resource Resource, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id", "object id must not be empty")
	}
	return c.get(ctx, "/v1/"+string(resource)+"/"+url.PathEscape(id), nil, "retrieve "+string(resource))
}

// get performs one GET request and returns the raw response body. Non-2xx
// responses are mapped to structured errors by status code.
func (c *Client) get(ctx context.Context, path string, params url.Values, operation string) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeAPIFailed,
			fmt.Sprintf("Failed to build %s request", operation), err)
	}

	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Stripe-Version", c.apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeAPIFailed,
			fmt.Sprintf("Stripe API %s failed", operation), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeAPIFailed,
			fmt.Sprintf("Failed to read %s response", operation), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewStripeError(operation, resp.StatusCode, stripeErrorMessage(body))
	}

	return body, nil
}

// stripeErrorMessage extracts the error message from a Stripe error envelope,
// falling back to the raw body when the shape is unexpected.
func stripeErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(body)
}
