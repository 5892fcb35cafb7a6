package config

import (
	"sort"
	"strings"
)

// Account credential naming convention. An environment entry like
//
//	STRIPE_1ST_ACCOUNT_API_KEY=rk_live_xxx
//
// registers the account "1st_account". The prefix and suffix are stripped and
// the remainder lower-cased to form the public account name.
const (
	accountKeyPrefix = "STRIPE_"
	accountKeyMarker = "_ACCOUNT"
	accountKeySuffix = "_API_KEY"
)

// Restricted key prefixes are the only credential shapes this server accepts.
// Secret keys (sk_...) grant write access and are excluded by policy: an
// unrestricted key must fail loudly at call time, not silently proceed.
var restrictedKeyPrefixes = []string{"rk_live_", "rk_test_"}

// AccountRegistry maps account names to their restricted API keys. Names are
// kept in a deterministic (lexicographic) order so fan-out output is stable
// across invocations.
type AccountRegistry struct {
	names []string
	keys  map[string]string
}

// ExtractAccounts derives the account registry from raw "KEY=VALUE"
// environment entries. Pure and total: malformed, empty, or non-restricted
// entries are excluded, never rejected with an error.
func ExtractAccounts(environ []string) *AccountRegistry {
	keys := make(map[string]string)

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || value == "" {
			continue
		}
		accountName, ok := parseAccountName(name)
		if !ok {
			continue
		}
		if !IsRestrictedKey(value) {
			continue
		}
		keys[accountName] = value
	}

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	return &AccountRegistry{names: names, keys: keys}
}

// parseAccountName matches STRIPE_<NAME>_ACCOUNT_API_KEY and returns the
// lower-cased account name (the "<NAME>_ACCOUNT" remainder).
func parseAccountName(envKey string) (string, bool) {
	if !strings.HasPrefix(envKey, accountKeyPrefix) || !strings.HasSuffix(envKey, accountKeySuffix) {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(envKey, accountKeyPrefix), accountKeySuffix)
	if !strings.HasSuffix(inner, accountKeyMarker) {
		return "", false
	}
	// Require a non-empty name before the marker
	if strings.TrimSuffix(inner, accountKeyMarker) == "" {
		return "", false
	}
	return strings.ToLower(inner), true
}

// IsRestrictedKey reports whether the value looks like a restricted API key
func IsRestrictedKey(value string) bool {
	for _, prefix := range restrictedKeyPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// Names returns the registered account names in registry order
func (r *AccountRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Key returns the API key for an account name
func (r *AccountRegistry) Key(name string) (string, bool) {
	key, ok := r.keys[name]
	return key, ok
}

// Has reports whether an account name is registered
func (r *AccountRegistry) Has(name string) bool {
	_, ok := r.keys[name]
	return ok
}

// Len returns the number of registered accounts
func (r *AccountRegistry) Len() int {
	return len(r.names)
}

// KeyMode describes the mode of an account's key ("live" or "test")
func (r *AccountRegistry) KeyMode(name string) string {
	key, ok := r.keys[name]
	if !ok {
		return ""
	}
	if strings.HasPrefix(key, "rk_test_") {
		return "test"
	}
	return "live"
}
