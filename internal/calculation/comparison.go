package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/planwise/forecast/internal/domain"
)

// CompareStrategies runs the payoff simulation once per strategy with
// identical inputs and diffs the outcomes. Saved figures are snowball minus
// avalanche, unclamped: a negative MonthsSaved means avalanche took longer
// in months even though it never loses on interest.
func (s *PayoffSimulator) CompareStrategies(debts []domain.Debt, extraPayment decimal.Decimal, start time.Time) (domain.StrategyComparison, error) {
	snowball, err := s.Simulate(debts, domain.StrategySnowball, extraPayment, start, false)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	avalanche, err := s.Simulate(debts, domain.StrategyAvalanche, extraPayment, start, false)
	if err != nil {
		return domain.StrategyComparison{}, err
	}

	return domain.StrategyComparison{
		Snowball:      snowball,
		Avalanche:     avalanche,
		MonthsSaved:   snowball.TotalMonths - avalanche.TotalMonths,
		InterestSaved: snowball.TotalInterest.Sub(avalanche.TotalInterest),
	}, nil
}

// CompareScenarios projects every scenario and aligns the results by
// calendar year, not loop index, so scenarios with different start years or
// durations can be charted together. Years where a scenario has no
// projection are absent from that year's balance map.
func (g *GrowthProjector) CompareScenarios(scenarios []domain.TSPScenario) (domain.ScenarioComparison, error) {
	comparison := domain.ScenarioComparison{}

	byYear := make(map[int]map[string]decimal.Decimal)
	for i := range scenarios {
		projection, err := g.Project(scenarios[i])
		if err != nil {
			return domain.ScenarioComparison{}, err
		}
		comparison.Scenarios = append(comparison.Scenarios, projection)

		for _, yp := range projection.Projections {
			if byYear[yp.Year] == nil {
				byYear[yp.Year] = make(map[string]decimal.Decimal)
			}
			byYear[yp.Year][projection.ScenarioName] = yp.EndingBalance
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		comparison.Years = append(comparison.Years, domain.ComparisonYear{
			Year:           year,
			EndingBalances: byYear[year],
		})
	}
	return comparison, nil
}
