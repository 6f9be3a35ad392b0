package rate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curconv/internal/domain"
)

func TestParseSnapshot_Success(t *testing.T) {
	table, err := ParseSnapshot([]byte(`{"base":"EUR","rates":{"EUR":1.0,"USD":1.1,"JPY":150.0}}`))
	require.NoError(t, err)

	require.Equal(t, "EUR", table.Base())
	require.Equal(t, 3, table.Len())

	usd, ok := table.Rate("USD")
	require.True(t, ok)
	require.InDelta(t, 1.1, usd, 1e-9)
}

func TestParseSnapshot_UppercasesCodes(t *testing.T) {
	table, err := ParseSnapshot([]byte(`{"rates":{"usd":1.1}}`))
	require.NoError(t, err)

	require.True(t, table.Has("USD"))
	require.False(t, table.Has("usd"))
}

func TestParseSnapshot_DefaultsBase(t *testing.T) {
	table, err := ParseSnapshot([]byte(`{"rates":{"USD":1.1}}`))
	require.NoError(t, err)
	require.Equal(t, "EUR", table.Base())
}

func TestParseSnapshot_EmptyInput(t *testing.T) {
	_, err := ParseSnapshot(nil)
	require.ErrorIs(t, err, domain.ErrEmptySnapshot)

	_, err = ParseSnapshot([]byte{})
	require.ErrorIs(t, err, domain.ErrEmptySnapshot)
}

func TestParseSnapshot_MalformedStructure(t *testing.T) {
	for _, payload := range []string{
		`{`,
		`[]`,
		`{"foo":{}}`,
		`{"rates":5}`,
		`{"rates":null}`,
	} {
		_, err := ParseSnapshot([]byte(payload))
		require.ErrorIs(t, err, domain.ErrMalformedSnapshot, "payload %s", payload)
	}
}

func TestParseSnapshot_InvalidRateValue(t *testing.T) {
	for _, payload := range []string{
		`{"rates":{"USD":"1.1"}}`,
		`{"rates":{"USD":0}}`,
		`{"rates":{"USD":-1.1}}`,
		`{"rates":{"USD":null}}`,
	} {
		_, err := ParseSnapshot([]byte(payload))

		var invalid *domain.InvalidRateError
		require.ErrorAs(t, err, &invalid, "payload %s", payload)
		require.Equal(t, "USD", invalid.Code, "payload %s", payload)
	}
}
