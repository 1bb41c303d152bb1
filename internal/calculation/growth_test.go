package calculation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/forecast/internal/domain"
)

func fixedScenario() domain.TSPScenario {
	rate := decimal.NewFromInt(7)
	return domain.TSPScenario{
		ID:              uuid.New(),
		Name:            "steady",
		CurrentBalance:  decimal.NewFromInt(10000),
		ContributionPct: decimal.NewFromInt(5),
		BasePay:         decimal.NewFromInt(100000),
		Allocation: map[string]decimal.Decimal{
			"C": decimal.NewFromInt(100),
		},
		UseHistoricalReturns: false,
		CustomAnnualReturn:   &rate,
		AnnualPayIncreasePct: decimal.Zero,
		RetirementAge:        43,
		BirthYear:            1985,
		StartYear:            2026,
	}
}

func TestGrowthThreeYearHandComputation(t *testing.T) {
	// Three years at a flat 7%: 5% contribution on 100k pay earns the full
	// 4% match, and half the year's inflow is credited with growth.
	scenario := fixedScenario() // retires in 2028

	projector := NewGrowthProjector(DefaultHistoricalReturns())
	result, err := projector.Project(scenario)
	require.NoError(t, err)
	require.Len(t, result.Projections, 3)

	year1 := result.Projections[0]
	assert.Equal(t, 2026, year1.Year)
	assert.Equal(t, 41, year1.Age)
	assertWithinCent(t, 10000, year1.StartingBalance)
	assertWithinCent(t, 5000, year1.Contribution)
	assertWithinCent(t, 4000, year1.EmployerMatch)
	assertWithinCent(t, 1015, year1.Growth)
	assertWithinCent(t, 20015, year1.EndingBalance)

	year2 := result.Projections[1]
	assertWithinCent(t, 20015, year2.StartingBalance)
	assertWithinCent(t, 1716.05, year2.Growth)
	assertWithinCent(t, 30731.05, year2.EndingBalance)

	year3 := result.Projections[2]
	assertWithinCent(t, 2466.17, year3.Growth)
	assertWithinCent(t, 42197.22, year3.EndingBalance)

	assertWithinCent(t, 42197.22, result.FinalBalance)
	assertWithinCent(t, 15000, result.TotalContributions)
	assertWithinCent(t, 12000, result.TotalEmployerMatch)
	assertWithinCent(t, 5197.22, result.TotalGrowth)
	assert.True(t, result.AverageReturnRate.Equal(decimal.NewFromFloat(0.07)))
}

func TestGrowthEndingBalanceIdentity(t *testing.T) {
	scenario := fixedScenario()
	scenario.RetirementAge = 62 // long horizon
	scenario.AnnualPayIncreasePct = decimal.NewFromInt(2)
	scenario.UseHistoricalReturns = true
	scenario.Allocation = map[string]decimal.Decimal{
		"C": decimal.NewFromInt(60),
		"S": decimal.NewFromInt(20),
		"G": decimal.NewFromInt(20),
	}

	result, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.NoError(t, err)
	require.NotEmpty(t, result.Projections)

	for i, yp := range result.Projections {
		expected := yp.StartingBalance.Add(yp.Contribution).Add(yp.EmployerMatch).Add(yp.Growth)
		assert.True(t, expected.Equal(yp.EndingBalance), "year %d breaks the balance identity", yp.Year)
		if i > 0 {
			assert.True(t, result.Projections[i-1].EndingBalance.Equal(yp.StartingBalance),
				"year %d does not start where year %d ended", yp.Year, yp.Year-1)
		}
	}

	last := result.Projections[len(result.Projections)-1]
	assert.True(t, result.FinalBalance.Equal(last.EndingBalance))
	sum := result.TotalContributions.Add(result.TotalEmployerMatch).Add(result.TotalGrowth)
	assert.True(t, scenario.CurrentBalance.Add(sum).Equal(result.FinalBalance))
}

func TestGrowthZeroContribution(t *testing.T) {
	scenario := fixedScenario()
	scenario.ContributionPct = decimal.Zero

	result, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.NoError(t, err)

	assert.True(t, result.TotalContributions.IsZero())
	assert.True(t, result.TotalEmployerMatch.IsZero(), "no contribution earns no match")
	// The existing balance still compounds at 7%.
	assertWithinCent(t, 10000*1.07*1.07*1.07, result.FinalBalance)
}

func TestGrowthZeroReturn(t *testing.T) {
	scenario := fixedScenario()
	zero := decimal.Zero
	scenario.CustomAnnualReturn = &zero

	result, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.NoError(t, err)

	assert.True(t, result.TotalGrowth.IsZero())
	// Balance only accumulates contributions and match.
	assertWithinCent(t, 10000+3*9000, result.FinalBalance)
}

func TestGrowthEmptyHorizon(t *testing.T) {
	scenario := fixedScenario()
	scenario.StartYear = 2030 // past the 2028 retirement year

	result, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.NoError(t, err)
	assert.Empty(t, result.Projections)
	assert.True(t, result.FinalBalance.Equal(scenario.CurrentBalance))
	assert.True(t, result.AverageReturnRate.IsZero())
}

func TestGrowthRejectsInvalidScenario(t *testing.T) {
	scenario := fixedScenario()
	scenario.Allocation = map[string]decimal.Decimal{"C": decimal.NewFromInt(50)}

	_, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGrowthUnknownFund(t *testing.T) {
	scenario := fixedScenario()
	scenario.UseHistoricalReturns = true
	scenario.CustomAnnualReturn = nil
	scenario.Allocation = map[string]decimal.Decimal{"Z": decimal.NewFromInt(100)}

	_, err := NewGrowthProjector(DefaultHistoricalReturns()).Project(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fund")
}

func TestMatchedPctTiers(t *testing.T) {
	tests := []struct {
		contribution float64
		matched      float64
	}{
		{0, 0},
		{2, 2},
		{3, 3},
		{4, 3.5},
		{5, 4},
		{10, 4},
	}
	for _, tt := range tests {
		got := matchedPct(decimal.NewFromFloat(tt.contribution))
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.matched)),
			"contribution %v%%: expected %v%%, got %s", tt.contribution, tt.matched, got)
	}
}

func TestBlendedReturnWeighting(t *testing.T) {
	provider, err := NewHistoricalReturns(2026, map[string][]decimal.Decimal{
		"C": {decimal.NewFromFloat(0.10)},
		"G": {decimal.NewFromFloat(0.02)},
	})
	require.NoError(t, err)

	g := NewGrowthProjector(provider)
	blended, err := g.blendedReturn(provider, map[string]decimal.Decimal{
		"C": decimal.NewFromInt(75),
		"G": decimal.NewFromInt(25),
	}, 2026)
	require.NoError(t, err)
	// 0.75*0.10 + 0.25*0.02
	assert.True(t, blended.Equal(decimal.NewFromFloat(0.08)), "got %s", blended)
}
