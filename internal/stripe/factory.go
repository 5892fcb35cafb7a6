package stripe

import (
	"github.com/revops-tools/stripe-mcp/internal/config"
	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

// Factory constructs per-account clients from the credential registry. A
// fresh client is built for every request; no pooling, no cross-account
// state.
type Factory struct {
	cfg      config.StripeConfig
	registry *config.AccountRegistry
}

// NewFactory creates a client factory over a credential registry
func NewFactory(cfg config.StripeConfig, registry *config.AccountRegistry) *Factory {
	return &Factory{cfg: cfg, registry: registry}
}

// ClientFor returns an isolated client bound to the named account's key
func (f *Factory) ClientFor(account string) (StripeClient, error) {
	key, ok := f.registry.Key(account)
	if !ok {
		return nil, apperrors.NewAccountNotFoundError(account)
	}
	return NewClient(f.cfg, key), nil
}

// Verify that Factory implements ClientFactory interface
var _ ClientFactory = (*Factory)(nil)
