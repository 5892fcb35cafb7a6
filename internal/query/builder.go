// Package query turns structured filter parameters into Stripe request
// shapes: url-encoded parameters for cursor-paginated listing, and boolean
// query strings for token-paginated search. Everything here is pure.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

// PageParams carries cursor pagination fields shared by all list requests
type PageParams struct {
	Limit         int
	StartingAfter string
	EndingBefore  string
}

// CustomerFilters are the structured filters for the customer resource
type CustomerFilters struct {
	Name          string
	Email         string
	CreatedAfter  int64 // unix seconds, 0 means unset
	CreatedBefore int64
}

// SubscriptionFilters are the structured filters for the subscription resource
type SubscriptionFilters struct {
	Customer string
	Status   string
	Price    string
}

// InvoiceFilters are the structured filters for the invoice resource
type InvoiceFilters struct {
	Customer      string
	Status        string
	Subscription  string
	Number        string
	Total         int64 // amount in minor units, 0 means unset
	CreatedAfter  int64
	CreatedBefore int64
}

// CustomerListParams encodes a customer list request. List mode filters only
// by the fixed fields Stripe exposes on /v1/customers: exact email and
// created range.
func CustomerListParams(f CustomerFilters, p PageParams) url.Values {
	values := pageValues(p)
	if f.Email != "" {
		values.Set("email", f.Email)
	}
	if f.CreatedAfter > 0 {
		values.Set("created[gte]", strconv.FormatInt(f.CreatedAfter, 10))
	}
	if f.CreatedBefore > 0 {
		values.Set("created[lte]", strconv.FormatInt(f.CreatedBefore, 10))
	}
	return values
}

// SubscriptionListParams encodes a subscription list request
func SubscriptionListParams(f SubscriptionFilters, p PageParams) url.Values {
	values := pageValues(p)
	if f.Customer != "" {
		values.Set("customer", f.Customer)
	}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	if f.Price != "" {
		values.Set("price", f.Price)
	}
	return values
}

// InvoiceListParams encodes an invoice list request
func InvoiceListParams(f InvoiceFilters, p PageParams) url.Values {
	values := pageValues(p)
	if f.Customer != "" {
		values.Set("customer", f.Customer)
	}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	if f.Subscription != "" {
		values.Set("subscription", f.Subscription)
	}
	return values
}

// CustomerSearchQuery builds the boolean query for customer search. Name and
// email use substring match; created bounds are numeric comparisons. At least
// one filter must be present: search without predicates is rejected and the
// caller is pointed at the list tool instead.
func CustomerSearchQuery(f CustomerFilters) (string, error) {
	var predicates []string
	if f.Name != "" {
		predicates = append(predicates, fuzzy("name", f.Name))
	}
	if f.Email != "" {
		predicates = append(predicates, fuzzy("email", f.Email))
	}
	predicates = appendCreatedRange(predicates, f.CreatedAfter, f.CreatedBefore)

	if len(predicates) == 0 {
		return "", noPredicatesError("customer", "list_customers")
	}
	return strings.Join(predicates, " AND "), nil
}

// SubscriptionSearchQuery builds the boolean query for subscription search
func SubscriptionSearchQuery(f SubscriptionFilters) (string, error) {
	var predicates []string
	if f.Customer != "" {
		predicates = append(predicates, exact("customer", f.Customer))
	}
	if f.Status != "" {
		predicates = append(predicates, exact("status", f.Status))
	}
	if f.Price != "" {
		predicates = append(predicates, exact("price", f.Price))
	}

	if len(predicates) == 0 {
		return "", noPredicatesError("subscription", "list_subscriptions")
	}
	return strings.Join(predicates, " AND "), nil
}

// InvoiceSearchQuery builds the boolean query for invoice search
func InvoiceSearchQuery(f InvoiceFilters) (string, error) {
	var predicates []string
	if f.Customer != "" {
		predicates = append(predicates, exact("customer", f.Customer))
	}
	if f.Status != "" {
		predicates = append(predicates, exact("status", f.Status))
	}
	if f.Subscription != "" {
		predicates = append(predicates, exact("subscription", f.Subscription))
	}
	if f.Number != "" {
		predicates = append(predicates, exact("number", f.Number))
	}
	if f.Total > 0 {
		predicates = append(predicates, fmt.Sprintf("total:%d", f.Total))
	}
	predicates = appendCreatedRange(predicates, f.CreatedAfter, f.CreatedBefore)

	if len(predicates) == 0 {
		return "", noPredicatesError("invoice", "list_invoices")
	}
	return strings.Join(predicates, " AND "), nil
}

// exact builds a field:"value" predicate (exact match)
func exact(field, value string) string {
	return fmt.Sprintf("%s:\"%s\"", field, escapeValue(value))
}

// fuzzy builds a field~"value" predicate (substring match)
func fuzzy(field, value string) string {
	return fmt.Sprintf("%s~\"%s\"", field, escapeValue(value))
}

func appendCreatedRange(predicates []string, after, before int64) []string {
	if after > 0 {
		predicates = append(predicates, fmt.Sprintf("created>=%d", after))
	}
	if before > 0 {
		predicates = append(predicates, fmt.Sprintf("created<=%d", before))
	}
	return predicates
}

// escapeValue escapes backslashes and double quotes for the Stripe search
// query language
func escapeValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

func noPredicatesError(kind, listTool string) error {
	return apperrors.NewValidationError("filters",
		fmt.Sprintf("at least one %s filter is required for search; use %s for an unfiltered listing", kind, listTool))
}

func pageValues(p PageParams) url.Values {
	values := url.Values{}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.StartingAfter != "" {
		values.Set("starting_after", p.StartingAfter)
	}
	if p.EndingBefore != "" {
		values.Set("ending_before", p.EndingBefore)
	}
	return values
}
