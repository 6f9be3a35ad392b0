package rate

import (
	"curconv/internal/domain"
)

// Convert resolves the request against the table and computes the cross
// rate. Both rates share the table's base currency, so the pair rate is
// simply table[to]/table[from]. The from code is checked before to, which
// fixes the error reported when both are unknown.
func Convert(table domain.RateTable, req domain.ConversionRequest) (domain.ConversionResult, error) {
	fromRate, ok := table.Rate(req.From)
	if !ok {
		return domain.ConversionResult{}, &domain.UnknownCurrencyError{Code: req.From, Side: domain.SideFrom}
	}
	toRate, ok := table.Rate(req.To)
	if !ok {
		return domain.ConversionResult{}, &domain.UnknownCurrencyError{Code: req.To, Side: domain.SideTo}
	}

	crossRate := toRate / fromRate
	return domain.ConversionResult{
		From:       req.From,
		To:         req.To,
		Rate:       crossRate,
		AmountFrom: req.Amount,
		AmountTo:   req.Amount * crossRate,
	}, nil
}
