package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/planwise/forecast/internal/domain"
	"github.com/planwise/forecast/pkg/dateutil"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)

	// BRS match tiers: dollar-for-dollar on the first 3 points of the
	// contribution rate, fifty cents on the dollar for the next 2, nothing
	// past 5.
	fullMatchCapPct = decimal.NewFromInt(3)
	halfMatchCapPct = decimal.NewFromInt(2)
	half            = decimal.NewFromFloat(0.5)
)

// GrowthProjector turns a TSP scenario into a year-by-year balance
// projection with contributions, employer match, and growth. The return
// table is injected so it can be swapped or mocked without touching the
// simulation.
type GrowthProjector struct {
	returns FundReturnProvider
	logger  Logger
}

// NewGrowthProjector creates a projector backed by the given return table
func NewGrowthProjector(returns FundReturnProvider) *GrowthProjector {
	return &GrowthProjector{returns: returns, logger: NopLogger{}}
}

// WithLogger replaces the projector's logger
func (g *GrowthProjector) WithLogger(logger Logger) *GrowthProjector {
	g.logger = logger
	return g
}

// Project simulates the scenario from its start year through the calendar
// year the participant reaches retirement age, inclusive. A scenario
// already past retirement age yields an empty projection.
func (g *GrowthProjector) Project(scenario domain.TSPScenario) (domain.GrowthProjection, error) {
	if err := scenario.Validate(); err != nil {
		return domain.GrowthProjection{}, err
	}

	provider := g.returns
	if !scenario.UseHistoricalReturns {
		provider = NewFixedReturnsFromPct(*scenario.CustomAnnualReturn)
	}

	result := domain.GrowthProjection{
		ScenarioName:       scenario.Name,
		TotalContributions: decimal.Zero,
		TotalEmployerMatch: decimal.Zero,
		TotalGrowth:        decimal.Zero,
		AverageReturnRate:  decimal.Zero,
	}

	balance := scenario.CurrentBalance
	basePay := scenario.BasePay
	returnSum := decimal.Zero

	for year := scenario.StartYear; year <= scenario.RetirementYear(); year++ {
		contribution := basePay.Mul(scenario.ContributionPct).Div(hundred)
		match := basePay.Mul(matchedPct(scenario.ContributionPct)).Div(hundred)

		blended, err := g.blendedReturn(provider, scenario.Allocation, year)
		if err != nil {
			return domain.GrowthProjection{}, err
		}
		returnSum = returnSum.Add(blended)

		// Mid-year crediting: money contributed through the year earns
		// roughly half a year of return.
		growth := blended.Mul(balance.Add(contribution.Add(match).Div(two)))
		ending := balance.Add(contribution).Add(match).Add(growth)

		result.Projections = append(result.Projections, domain.YearProjection{
			Year:            year,
			Age:             dateutil.AgeInYear(scenario.BirthYear, year),
			StartingBalance: balance,
			Contribution:    contribution,
			EmployerMatch:   match,
			Growth:          growth,
			EndingBalance:   ending,
		})

		result.TotalContributions = result.TotalContributions.Add(contribution)
		result.TotalEmployerMatch = result.TotalEmployerMatch.Add(match)
		result.TotalGrowth = result.TotalGrowth.Add(growth)

		balance = ending
		basePay = basePay.Mul(decimal.NewFromInt(1).Add(scenario.AnnualPayIncreasePct.Div(hundred)))
	}

	result.FinalBalance = balance
	if n := len(result.Projections); n > 0 {
		result.AverageReturnRate = returnSum.Div(decimal.NewFromInt(int64(n)))
	}
	g.logger.Debugf("growth: scenario %q projected %d years", scenario.Name, len(result.Projections))
	return result, nil
}

// blendedReturn is the allocation-weighted average of per-fund return rates
// for the year.
func (g *GrowthProjector) blendedReturn(provider FundReturnProvider, allocation map[string]decimal.Decimal, year int) (decimal.Decimal, error) {
	blended := decimal.Zero
	for fund, pct := range allocation {
		rate, err := provider.AnnualReturn(fund, year)
		if err != nil {
			return decimal.Zero, fmt.Errorf("return lookup for year %d: %w", year, err)
		}
		blended = blended.Add(pct.Div(hundred).Mul(rate))
	}
	return blended, nil
}

// matchedPct converts a contribution percentage into the employer-matched
// percentage of pay under the tiered schedule.
func matchedPct(contributionPct decimal.Decimal) decimal.Decimal {
	fullTier := decimal.Min(contributionPct, fullMatchCapPct)
	halfTier := decimal.Min(decimal.Max(contributionPct.Sub(fullMatchCapPct), decimal.Zero), halfMatchCapPct)
	return fullTier.Add(halfTier.Mul(half))
}
