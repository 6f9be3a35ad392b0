package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"curconv/internal/domain"
)

func init() {
	// keep rendered output free of escape sequences under test
	color.NoColor = true
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	renderResult(&buf, domain.ConversionResult{
		From:       "EUR",
		To:         "USD",
		Rate:       1.1,
		AmountFrom: 10,
		AmountTo:   11,
	})

	require.Equal(t, "Actual exchange rate: EUR 10.0000 = USD 11.0000\n", buf.String())
}

func TestRenderUsualList_SkipsUnnamedCodes(t *testing.T) {
	table := domain.NewRateTable("EUR", map[string]float64{
		"EUR": 1.0,
		"USD": 1.1,
		"XDR": 0.8, // no display name, must not be listed
	})

	var buf bytes.Buffer
	renderUsualList(&buf, table)

	out := buf.String()
	require.Contains(t, out, " EUR | Euro")
	require.Contains(t, out, " USD | US Dollar")
	require.NotContains(t, out, "XDR")
}

func TestRenderCompleteList_SortedCodes(t *testing.T) {
	table := domain.NewRateTable("EUR", map[string]float64{
		"USD": 1.1,
		"EUR": 1.0,
		"JPY": 150.0,
	})

	var buf bytes.Buffer
	renderCompleteList(&buf, table)

	require.Contains(t, buf.String(), "| EUR | JPY | USD |")
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	renderVersion(&buf, "1.1.0")
	require.Equal(t, "curconv v1.1.0\n", buf.String())
}

func TestRenderHelp_MentionsAllFlags(t *testing.T) {
	var buf bytes.Buffer
	renderHelp(&buf, "1.1.0")

	out := buf.String()
	for _, flag := range []string{"--list-usual", "--list-all", "--help", "--version"} {
		require.Contains(t, out, flag)
	}
	require.Contains(t, out, "USAGE:")
}
