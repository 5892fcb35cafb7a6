package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccounts_NamingConvention(t *testing.T) {
	tests := []struct {
		name     string
		environ  []string
		expected map[string]string
	}{
		{
			name: "matching keys with restricted values",
			environ: []string{
				"STRIPE_1ST_ACCOUNT_API_KEY=rk_live_abc123",
				"STRIPE_2ND_ACCOUNT_API_KEY=rk_test_def456",
			},
			expected: map[string]string{
				"1st_account": "rk_live_abc123",
				"2nd_account": "rk_test_def456",
			},
		},
		{
			name: "secret keys are excluded",
			environ: []string{
				"STRIPE_MAIN_ACCOUNT_API_KEY=sk_live_abc123",
				"STRIPE_SIDE_ACCOUNT_API_KEY=rk_live_ok",
			},
			expected: map[string]string{
				"side_account": "rk_live_ok",
			},
		},
		{
			name: "empty values are excluded",
			environ: []string{
				"STRIPE_MAIN_ACCOUNT_API_KEY=",
			},
			expected: map[string]string{},
		},
		{
			name: "keys without the account marker are excluded",
			environ: []string{
				"STRIPE_API_KEY=rk_live_abc",
				"STRIPE_WEBHOOK_API_KEY=rk_live_abc",
			},
			expected: map[string]string{},
		},
		{
			name: "unrelated environment entries are ignored",
			environ: []string{
				"PATH=/usr/bin",
				"HOME=/home/user",
				"STRIPE_API_BASE_URL=https://api.stripe.com",
			},
			expected: map[string]string{},
		},
		{
			name: "marker without a name is excluded",
			environ: []string{
				"STRIPE__ACCOUNT_API_KEY=rk_live_abc",
			},
			expected: map[string]string{},
		},
		{
			name: "publishable and malformed values are excluded",
			environ: []string{
				"STRIPE_A_ACCOUNT_API_KEY=pk_live_abc",
				"STRIPE_B_ACCOUNT_API_KEY=not-a-key",
			},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := ExtractAccounts(tt.environ)

			assert.Equal(t, len(tt.expected), registry.Len())
			for name, key := range tt.expected {
				got, ok := registry.Key(name)
				assert.True(t, ok, "expected account %s to be registered", name)
				assert.Equal(t, key, got)
			}
		})
	}
}

func TestExtractAccounts_DeterministicOrder(t *testing.T) {
	environ := []string{
		"STRIPE_ZULU_ACCOUNT_API_KEY=rk_test_z",
		"STRIPE_ALPHA_ACCOUNT_API_KEY=rk_test_a",
		"STRIPE_MIKE_ACCOUNT_API_KEY=rk_test_m",
	}

	registry := ExtractAccounts(environ)

	assert.Equal(t, []string{"alpha_account", "mike_account", "zulu_account"}, registry.Names())

	// Same input always yields the same order
	again := ExtractAccounts(environ)
	assert.Equal(t, registry.Names(), again.Names())
}

func TestExtractAccounts_NamesAreLowercased(t *testing.T) {
	registry := ExtractAccounts([]string{"STRIPE_ACME_CORP_ACCOUNT_API_KEY=rk_live_x"})

	assert.True(t, registry.Has("acme_corp_account"))
	assert.False(t, registry.Has("ACME_CORP_ACCOUNT"))
}

func TestAccountRegistry_KeyMode(t *testing.T) {
	registry := ExtractAccounts([]string{
		"STRIPE_LIVE_ACCOUNT_API_KEY=rk_live_x",
		"STRIPE_TEST_ACCOUNT_API_KEY=rk_test_y",
	})

	assert.Equal(t, "live", registry.KeyMode("live_account"))
	assert.Equal(t, "test", registry.KeyMode("test_account"))
	assert.Equal(t, "", registry.KeyMode("ghost_account"))
}

func TestAccountRegistry_NamesReturnsCopy(t *testing.T) {
	registry := ExtractAccounts([]string{"STRIPE_A_ACCOUNT_API_KEY=rk_test_a"})

	names := registry.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"a_account"}, registry.Names())
}

func TestIsRestrictedKey(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"rk_live_abc", true},
		{"rk_test_abc", true},
		{"sk_live_abc", false},
		{"sk_test_abc", false},
		{"pk_live_abc", false},
		{"", false},
		{"rk_", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsRestrictedKey(tt.value), "value %q", tt.value)
	}
}
