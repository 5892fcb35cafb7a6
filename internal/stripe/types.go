package stripe

import "encoding/json"

// Resource identifies a Stripe resource collection
type Resource string

const (
	ResourceCustomers     Resource = "customers"
	ResourceSubscriptions Resource = "subscriptions"
	ResourceInvoices      Resource = "invoices"
)

// ListPage is one page of a cursor-paginated list response. Items are kept as
// raw JSON: the server relays Stripe objects verbatim and never reshapes them.
type ListPage struct {
	Data    []json.RawMessage `json:"data"`
	HasMore bool              `json:"has_more"`
}

// SearchPage is one page of a token-paginated search response
type SearchPage struct {
	Data     []json.RawMessage `json:"data"`
	HasMore  bool              `json:"has_more"`
	NextPage string            `json:"next_page"`
}

// SearchOptions carries search pagination parameters
type SearchOptions struct {
	Limit int    // page size, Stripe accepts 1..100
	Page  string // opaque continuation token from a prior page
}

// LastID returns the id of the final item on the page, used as the
// starting_after cursor for the next list request. Empty when the page is
// empty or the item carries no id.
func (p *ListPage) LastID() string {
	if len(p.Data) == 0 {
		return ""
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(p.Data[len(p.Data)-1], &probe); err != nil {
		return ""
	}
	return probe.ID
}
