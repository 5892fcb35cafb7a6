package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEnvelope_EmptyOutcomes(t *testing.T) {
	envelope, err := FormatEnvelope([]Outcome{})

	require.NoError(t, err)
	assert.Equal(t, NoAccountsMessage, envelope)
}

func TestFormatEnvelope_KeyedByAccountName(t *testing.T) {
	outcomes := []Outcome{
		{AccountName: "a_account", Success: true, Message: "Found 1 customer", Data: []string{"x"}},
		{AccountName: "b_account", Success: false, Message: "boom"},
	}

	envelope, err := FormatEnvelope(outcomes)
	require.NoError(t, err)

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(envelope), &parsed))

	require.Len(t, parsed, 2)
	require.Contains(t, parsed, "a_account")
	require.Contains(t, parsed, "b_account")

	assert.Equal(t, true, parsed["a_account"]["success"])
	assert.Equal(t, "Found 1 customer", parsed["a_account"]["message"])
	assert.Equal(t, []interface{}{"x"}, parsed["a_account"]["data"])

	assert.Equal(t, false, parsed["b_account"]["success"])
	assert.Equal(t, "boom", parsed["b_account"]["message"])
}

func TestFormatEnvelope_FailureCarriesNoData(t *testing.T) {
	outcomes := []Outcome{
		// Data on a failed outcome must not leak into the envelope
		{AccountName: "a_account", Success: false, Message: "bad key", Data: []string{"leak"}},
	}

	envelope, err := FormatEnvelope(outcomes)
	require.NoError(t, err)

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(envelope), &parsed))

	_, hasData := parsed["a_account"]["data"]
	assert.False(t, hasData)
}

func TestFormatEnvelope_PaginationFieldsOmittedUnlessSet(t *testing.T) {
	outcomes := []Outcome{
		{AccountName: "plain", Success: true, Message: "ok", Data: []string{}},
		{AccountName: "paged", Success: true, Message: "ok", Data: []string{}, HasMore: true, NextPage: "cus_9"},
	}

	envelope, err := FormatEnvelope(outcomes)
	require.NoError(t, err)

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(envelope), &parsed))

	_, hasMore := parsed["plain"]["has_more"]
	_, nextPage := parsed["plain"]["next_page"]
	assert.False(t, hasMore)
	assert.False(t, nextPage)

	assert.Equal(t, true, parsed["paged"]["has_more"])
	assert.Equal(t, "cus_9", parsed["paged"]["next_page"])
}

func TestFormatEnvelope_EmptyDataSliceIsSerialized(t *testing.T) {
	outcomes := []Outcome{
		{AccountName: "a_account", Success: true, Message: "Found 0 customers", Data: []json.RawMessage{}},
	}

	envelope, err := FormatEnvelope(outcomes)
	require.NoError(t, err)

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(envelope), &parsed))

	data, hasData := parsed["a_account"]["data"]
	require.True(t, hasData)
	assert.Equal(t, []interface{}{}, data)
}

func TestFormatEnvelope_DuplicateAccountCollapsesLastWriteWins(t *testing.T) {
	outcomes := []Outcome{
		{AccountName: "a_account", Success: true, Message: "first"},
		{AccountName: "a_account", Success: false, Message: "second"},
	}

	envelope, err := FormatEnvelope(outcomes)
	require.NoError(t, err)

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(envelope), &parsed))

	require.Len(t, parsed, 1)
	assert.Equal(t, "second", parsed["a_account"]["message"])
	assert.Equal(t, false, parsed["a_account"]["success"])
}
