// Package pagination drives paged retrievals to either a bounded result or
// an exhaustive fetch-all traversal. It is agnostic to the pagination scheme:
// cursor-based listing and token-based search both fit the FetchPage shape.
package pagination

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

const (
	// DefaultPageSize is the page size used for traversal requests
	DefaultPageSize = 20

	// DefaultCap bounds accumulated items when fetch-all was not requested
	DefaultCap = 100
)

// Page is one fetched page plus its continuation state. NextCursor is the
// opaque continuation value for the following request: the last item id for
// cursor listing, the page token for search.
type Page struct {
	Items      []json.RawMessage
	NextCursor string
	HasMore    bool
}

// FetchPage fetches one page starting at the given cursor ("" for the first
// page), requesting at most limit items.
type FetchPage func(ctx context.Context, cursor string, limit int) (*Page, error)

// Options controls a traversal
type Options struct {
	StartCursor string
	PageSize    int  // 0 means DefaultPageSize
	Cap         int  // 0 means DefaultCap; ignored when FetchAll
	FetchAll    bool // lift the cap and traverse to exhaustion
}

// Result is the accumulated outcome of a traversal
type Result struct {
	Items      []json.RawMessage
	HasMore    bool   // true when the traversal stopped with more available
	NextCursor string // continuation point when HasMore
}

// Collect drives page fetches until the source is exhausted, the cap is
// reached, or the context is done. Termination is guaranteed: a cursor that
// fails to advance after a non-empty page is reported as a defect rather
// than looped on.
func Collect(ctx context.Context, fetch FetchPage, opts Options) (*Result, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	capLimit := opts.Cap
	if capLimit <= 0 {
		capLimit = DefaultCap
	}

	result := &Result{Items: []json.RawMessage{}}
	cursor := opts.StartCursor

	for {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewErrorWithCause(apperrors.ErrStripeTimeout,
				"Pagination traversal canceled", err)
		}

		limit := pageSize
		if !opts.FetchAll {
			if remaining := capLimit - len(result.Items); remaining < limit {
				limit = remaining
			}
		}

		page, err := fetch(ctx, cursor, limit)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, page.Items...)

		if !page.HasMore || len(page.Items) == 0 {
			return result, nil
		}

		if page.NextCursor == cursor {
			return nil, apperrors.NewPaginationStalledError(cursor)
		}
		cursor = page.NextCursor

		if !opts.FetchAll && len(result.Items) >= capLimit {
			result.HasMore = true
			result.NextCursor = cursor
			return result, nil
		}
	}
}

// Summarize renders the human-readable count line for a traversal result,
// with a hint when a bounded result stopped short of the full set.
func Summarize(label string, result *Result) string {
	noun := label
	if len(result.Items) == 1 {
		noun = singular(label)
	}
	summary := fmt.Sprintf("Found %d %s", len(result.Items), noun)
	if result.HasMore {
		summary += " (more results are available; pass fetch_all=true or continue from the returned cursor)"
	}
	return summary
}

func singular(label string) string {
	if len(label) > 1 && label[len(label)-1] == 's' {
		return label[:len(label)-1]
	}
	return label
}
