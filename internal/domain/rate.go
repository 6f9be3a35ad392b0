package domain

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// RateTable holds the exchange rates of one snapshot, keyed by uppercase
// currency code and expressed relative to Base. It is built once per run
// and never mutated afterwards.
type RateTable struct {
	base  string
	rates map[string]float64
}

func NewRateTable(base string, rates map[string]float64) RateTable {
	normalized := make(map[string]float64, len(rates))
	for code, value := range rates {
		normalized[strings.ToUpper(code)] = value
	}
	return RateTable{base: strings.ToUpper(base), rates: normalized}
}

// Base is the currency all rates are expressed against (rate 1.0).
func (t RateTable) Base() string { return t.base }

func (t RateTable) Rate(code string) (float64, bool) {
	v, ok := t.rates[code]
	return v, ok
}

func (t RateTable) Has(code string) bool {
	_, ok := t.rates[code]
	return ok
}

func (t RateTable) Len() int { return len(t.rates) }

// Codes returns all currency codes in the table, sorted.
func (t RateTable) Codes() []string {
	codes := slices.Collect(maps.Keys(t.rates))
	slices.Sort(codes)
	return codes
}

// ConversionRequest is the normalized form of a command-line expression.
// From and To may still be empty here; resolving them against a RateTable
// is the conversion engine's job.
type ConversionRequest struct {
	From   string
	To     string
	Amount float64
}

// Expression renders the request back into its canonical textual form,
// e.g. {10.5 USD EUR} -> "10.5USD=EUR". Parsing the result yields an
// equal request.
func (r ConversionRequest) Expression() string {
	return strconv.FormatFloat(r.Amount, 'f', -1, 64) + r.From + "=" + r.To
}

// ConversionResult is the outcome of applying a RateTable to a request.
type ConversionResult struct {
	From       string
	To         string
	Rate       float64
	AmountFrom float64
	AmountTo   float64
}
