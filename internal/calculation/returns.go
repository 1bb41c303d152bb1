package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// FundReturnProvider is a read-only lookup of annual return rates per fund.
// Rates are fractions (0.07 means 7%). Providers are injected into the
// growth projector so return assumptions can be swapped or mocked without
// touching simulation logic.
type FundReturnProvider interface {
	AnnualReturn(fund string, year int) (decimal.Decimal, error)
	Funds() []string
}

// HistoricalReturns serves a fixed annual-return series per fund, cycled by
// modulo over the available data window: the rate for calendar year Y is
// series[(Y - BaseYear) mod len(series)]. Projections longer than the table
// simply replay it.
type HistoricalReturns struct {
	BaseYear int
	Series   map[string][]decimal.Decimal
}

// NewHistoricalReturns creates a provider over the given series. Every fund
// must carry the same number of years.
func NewHistoricalReturns(baseYear int, series map[string][]decimal.Decimal) (*HistoricalReturns, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("historical returns: no fund series provided")
	}
	length := -1
	for fund, rates := range series {
		if len(rates) == 0 {
			return nil, fmt.Errorf("historical returns: fund %s has no data points", fund)
		}
		if length >= 0 && len(rates) != length {
			return nil, fmt.Errorf("historical returns: fund %s has %d data points, expected %d", fund, len(rates), length)
		}
		length = len(rates)
	}
	return &HistoricalReturns{BaseYear: baseYear, Series: series}, nil
}

// AnnualReturn returns the cycled historical rate for the fund and year
func (h *HistoricalReturns) AnnualReturn(fund string, year int) (decimal.Decimal, error) {
	rates, ok := h.Series[fund]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown fund: %s", fund)
	}
	idx := (year - h.BaseYear) % len(rates)
	if idx < 0 {
		idx += len(rates)
	}
	return rates[idx], nil
}

// Funds returns the fund names in the table, sorted for determinism
func (h *HistoricalReturns) Funds() []string {
	funds := make([]string, 0, len(h.Series))
	for fund := range h.Series {
		funds = append(funds, fund)
	}
	sort.Strings(funds)
	return funds
}

// FixedReturns serves one uniform rate for every fund and year. Used when a
// scenario supplies a custom annual return instead of historical data.
type FixedReturns struct {
	Rate decimal.Decimal
}

// NewFixedReturnsFromPct creates a FixedReturns from a percentage value
// (7.0 means 7%).
func NewFixedReturnsFromPct(pct decimal.Decimal) *FixedReturns {
	return &FixedReturns{Rate: pct.Div(decimal.NewFromInt(100))}
}

// AnnualReturn returns the uniform rate regardless of fund or year
func (f *FixedReturns) AnnualReturn(fund string, year int) (decimal.Decimal, error) {
	return f.Rate, nil
}

// Funds returns an empty list; a fixed provider accepts any fund name
func (f *FixedReturns) Funds() []string {
	return nil
}

// defaultBaseYear anchors the bundled TSP series; the modulo cycle maps any
// projection year back into this window.
const defaultBaseYear = 2005

// DefaultHistoricalReturns returns the bundled TSP fund annual-return table
// (C/S/I/F/G, 2005 through 2023, per TSP.gov published returns).
func DefaultHistoricalReturns() *HistoricalReturns {
	series := map[string][]decimal.Decimal{
		"C": fractions(0.0496, 0.1579, 0.0546, -0.3699, 0.2668, 0.1506, 0.0212, 0.1607, 0.3245, 0.1369, 0.0138, 0.1201, 0.2183, -0.0441, 0.3145, 0.1831, 0.2868, -0.1817, 0.2632),
		"S": fractions(0.1010, 0.1503, 0.0549, -0.3832, 0.3463, 0.2916, -0.0381, 0.1824, 0.3821, 0.0793, -0.0303, 0.1635, 0.1836, -0.0926, 0.2786, 0.3177, 0.1232, -0.2626, 0.2510),
		"I": fractions(0.1358, 0.2625, 0.1162, -0.4243, 0.3004, 0.0781, -0.1181, 0.1886, 0.2219, -0.0520, -0.0026, 0.0213, 0.2532, -0.1343, 0.2230, 0.0828, 0.1145, -0.1381, 0.1843),
		"F": fractions(0.0240, 0.0440, 0.0709, 0.0545, 0.0598, 0.0671, 0.0781, 0.0429, -0.0171, 0.0673, 0.0091, 0.0291, 0.0382, 0.0015, 0.0868, 0.0753, -0.0187, -0.1283, 0.0558),
		"G": fractions(0.0449, 0.0493, 0.0487, 0.0375, 0.0297, 0.0281, 0.0245, 0.0147, 0.0189, 0.0231, 0.0204, 0.0182, 0.0233, 0.0291, 0.0224, 0.0097, 0.0138, 0.0298, 0.0422),
	}
	provider, err := NewHistoricalReturns(defaultBaseYear, series)
	if err != nil {
		// The bundled table is validated by tests; a malformed edit is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return provider
}

func fractions(values ...float64) []decimal.Decimal {
	rates := make([]decimal.Decimal, len(values))
	for i, v := range values {
		rates[i] = decimal.NewFromFloat(v)
	}
	return rates
}
