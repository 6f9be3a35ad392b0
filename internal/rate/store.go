package rate

import (
	"encoding/json"
	"fmt"
	"math"

	"curconv/internal/domain"
)

// defaultBase applies when a snapshot carries no explicit "base" key. The
// upstream feed publishes ECB reference rates, which are euro based.
const defaultBase = "EUR"

type snapshotPayload struct {
	Base  string          `json:"base"`
	Rates json.RawMessage `json:"rates"`
}

// ParseSnapshot materializes a rate table from a raw snapshot payload.
// Codes are uppercased on load so that lookups with parser-produced codes
// never miss on case alone.
func ParseSnapshot(data []byte) (domain.RateTable, error) {
	if len(data) == 0 {
		return domain.RateTable{}, domain.ErrEmptySnapshot
	}

	var payload snapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %w", domain.ErrMalformedSnapshot, err)
	}
	if len(payload.Rates) == 0 {
		return domain.RateTable{}, domain.ErrMalformedSnapshot
	}

	var entries map[string]any
	if err := json.Unmarshal(payload.Rates, &entries); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %w", domain.ErrMalformedSnapshot, err)
	}
	if entries == nil { // "rates": null
		return domain.RateTable{}, domain.ErrMalformedSnapshot
	}

	rates := make(map[string]float64, len(entries))
	for code, value := range entries {
		v, ok := value.(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return domain.RateTable{}, &domain.InvalidRateError{Code: code, Value: fmt.Sprint(value)}
		}
		rates[code] = v
	}

	base := payload.Base
	if base == "" {
		base = defaultBase
	}
	return domain.NewRateTable(base, rates), nil
}
