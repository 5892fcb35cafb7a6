package dispatch

import (
	"encoding/json"

	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

// NoAccountsMessage is returned verbatim when a dispatch produced zero
// outcomes. Not an error: an empty registry is a recoverable configuration
// state.
const NoAccountsMessage = "No Stripe accounts are configured. Set STRIPE_<NAME>_ACCOUNT_API_KEY environment variables with restricted keys (rk_live_... or rk_test_...)."

// accountEntry is the serialized per-account value inside the envelope.
// HasMore and NextPage are omitted entirely unless set; failed outcomes carry
// no data field.
type accountEntry struct {
	Data     interface{} `json:"data,omitempty"`
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	HasMore  bool        `json:"has_more,omitempty"`
	NextPage string      `json:"next_page,omitempty"`
}

// FormatEnvelope maps a dispatch's outcomes into the single JSON payload the
// tool layer returns as one text content block. Keys are account names;
// duplicate names collapse last-write-wins.
func FormatEnvelope(outcomes []Outcome) (string, error) {
	if len(outcomes) == 0 {
		return NoAccountsMessage, nil
	}

	envelope := make(map[string]accountEntry, len(outcomes))
	for _, outcome := range outcomes {
		entry := accountEntry{
			Success:  outcome.Success,
			Message:  outcome.Message,
			HasMore:  outcome.HasMore,
			NextPage: outcome.NextPage,
		}
		if outcome.Success {
			entry.Data = outcome.Data
		}
		envelope[outcome.AccountName] = entry
	}

	serialized, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", apperrors.NewErrorWithCause(apperrors.ErrInternalServer,
			"Failed to serialize response envelope", err)
	}
	return string(serialized), nil
}
