package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revops-tools/stripe-mcp/internal/config"
	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
)

func TestFactory_ClientFor(t *testing.T) {
	registry := config.ExtractAccounts([]string{
		"STRIPE_MAIN_ACCOUNT_API_KEY=rk_test_main",
	})
	factory := NewFactory(config.StripeConfig{
		BaseURL:    config.DefaultBaseURL,
		APIVersion: config.APIVersion,
	}, registry)

	client, err := factory.ClientFor("main_account")

	require.NoError(t, err)
	require.NotNil(t, client)

	// Each call constructs a fresh, isolated client
	again, err := factory.ClientFor("main_account")
	require.NoError(t, err)
	assert.NotSame(t, client, again)
}

func TestFactory_ClientFor_UnknownAccount(t *testing.T) {
	factory := NewFactory(config.StripeConfig{}, config.ExtractAccounts(nil))

	client, err := factory.ClientFor("ghost_account")

	require.Error(t, err)
	assert.Nil(t, client)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrAccountNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "ghost_account")
}
