package calculation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/forecast/internal/domain"
)

func testEvents(start time.Time) []domain.RecurringEvent {
	payDay := time.Friday
	return []domain.RecurringEvent{
		{
			ID: uuid.New(), Name: "Paycheck", Amount: decimal.NewFromInt(1500),
			Frequency: domain.FrequencyBiweekly, StartDate: start, DayOfWeek: &payDay,
			IsIncome: true,
		},
		{
			ID: uuid.New(), Name: "Rent", Amount: decimal.NewFromInt(1200),
			Frequency: domain.FrequencyMonthly, StartDate: start,
		},
		{
			ID: uuid.New(), Name: "Streaming", Amount: decimal.NewFromFloat(15.99),
			Frequency: domain.FrequencyMonthly, StartDate: start,
		},
	}
}

func TestCashFlowBalanceIdentity(t *testing.T) {
	start := date(2025, time.January, 1)
	startingBalance := decimal.NewFromFloat(2500.50)
	projector := NewCashFlowProjector()

	projection, err := projector.Project(startingBalance, testEvents(start), start, 90)
	require.NoError(t, err)
	require.Len(t, projection.Days, 90)

	// cumulative_income - cumulative_expenses + starting_balance must equal
	// projected_balance on every single day, exactly.
	for i, day := range projection.Days {
		expected := day.CumulativeIncome.Sub(day.CumulativeExpenses).Add(startingBalance)
		assert.True(t, expected.Equal(day.ProjectedBalance),
			"day %d: expected %s, got %s", i, expected, day.ProjectedBalance)
	}

	last := projection.Days[len(projection.Days)-1]
	assert.True(t, projection.EndingBalance.Equal(last.ProjectedBalance))
	assert.True(t, projection.TotalIncome.Equal(last.CumulativeIncome))
	assert.True(t, projection.TotalExpenses.Equal(last.CumulativeExpenses))
}

func TestCashFlowDayContents(t *testing.T) {
	start := date(2025, time.January, 1)
	events := []domain.RecurringEvent{
		{
			ID: uuid.New(), Name: "Rent", Amount: decimal.NewFromInt(1200),
			Frequency: domain.FrequencyMonthly, StartDate: start,
		},
	}
	projection, err := NewCashFlowProjector().Project(decimal.NewFromInt(3000), events, start, 31)
	require.NoError(t, err)

	first := projection.Days[0]
	require.Len(t, first.Events, 1)
	assert.Equal(t, "Rent", first.Events[0].Name)
	assert.True(t, first.Events[0].Amount.Equal(decimal.NewFromInt(-1200)),
		"expense occurrences carry a negative signed amount")
	assert.True(t, first.NetChange().Equal(decimal.NewFromInt(-1200)))
	assert.True(t, projection.Days[1].ProjectedBalance.Equal(decimal.NewFromInt(1800)))
	assert.Empty(t, projection.Days[1].Events)
}

func TestCashFlowLowestBalance(t *testing.T) {
	start := date(2025, time.January, 1)
	events := []domain.RecurringEvent{
		{
			ID: uuid.New(), Name: "Rent", Amount: decimal.NewFromInt(900),
			Frequency: domain.FrequencyMonthly, StartDate: start,
		},
		{
			ID: uuid.New(), Name: "Paycheck", Amount: decimal.NewFromInt(1000),
			Frequency: domain.FrequencyMonthly, StartDate: start.AddDate(0, 0, 14),
			IsIncome: true,
		},
	}
	projection, err := NewCashFlowProjector().Project(decimal.NewFromInt(1000), events, start, 31)
	require.NoError(t, err)

	// Balance dips to 100 after rent on day 1 and recovers on payday.
	assert.True(t, projection.LowestBalance.Equal(decimal.NewFromInt(100)),
		"expected 100, got %s", projection.LowestBalance)
	assert.Equal(t, start, projection.LowestBalanceDate)
}

func TestWhatIfZeroAmountReproducesBaseline(t *testing.T) {
	start := date(2025, time.January, 1)
	projector := NewCashFlowProjector()
	scenario := NewWhatIfEvent("noop", decimal.Zero, domain.FrequencyMonthly, start)

	result, err := projector.ProjectWithScenario(decimal.NewFromInt(5000), testEvents(start), start, 60, scenario)
	require.NoError(t, err)
	require.Len(t, result.Scenario.Days, len(result.Baseline.Days))

	for i := range result.Baseline.Days {
		assert.True(t, result.Baseline.Days[i].ProjectedBalance.Equal(result.Scenario.Days[i].ProjectedBalance),
			"day %d diverged with a zero-amount scenario", i)
	}
	assert.True(t, result.Baseline.EndingBalance.Equal(result.Scenario.EndingBalance))
}

func TestWhatIfDoesNotMutateBaseline(t *testing.T) {
	start := date(2025, time.January, 1)
	events := testEvents(start)
	countBefore := len(events)
	scenario := NewWhatIfEvent("New car payment", decimal.NewFromInt(-450), domain.FrequencyMonthly, start)

	result, err := NewCashFlowProjector().ProjectWithScenario(decimal.NewFromInt(5000), events, start, 60, scenario)
	require.NoError(t, err)

	assert.Len(t, events, countBefore, "baseline event list must not grow")
	assert.True(t, result.Scenario.EndingBalance.LessThan(result.Baseline.EndingBalance),
		"an added expense must lower the scenario's ending balance")
}

func TestCashFlowDeterminism(t *testing.T) {
	start := date(2025, time.March, 1)
	projector := NewCashFlowProjector()
	events := testEvents(start)

	first, err := projector.Project(decimal.NewFromInt(1234), events, start, 45)
	require.NoError(t, err)
	second, err := projector.Project(decimal.NewFromInt(1234), events, start, 45)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input must produce identical output")
}

func TestCashFlowRejectsInvalidInput(t *testing.T) {
	start := date(2025, time.January, 1)
	projector := NewCashFlowProjector()

	_, err := projector.Project(decimal.Zero, nil, start, 0)
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	bad := []domain.RecurringEvent{{ID: uuid.New(), Name: "x", Amount: decimal.NewFromInt(1), Frequency: "hourly", StartDate: start}}
	_, err = projector.Project(decimal.Zero, bad, start, 30)
	assert.Error(t, err)
}

func TestNewWhatIfEventSigns(t *testing.T) {
	anchor := date(2025, time.January, 1)
	income := NewWhatIfEvent("bonus", decimal.NewFromInt(500), domain.FrequencyMonthly, anchor)
	expense := NewWhatIfEvent("loan", decimal.NewFromInt(-500), domain.FrequencyMonthly, anchor)

	assert.True(t, income.IsIncome)
	assert.False(t, expense.IsIncome)
	assert.True(t, expense.Amount.Equal(decimal.NewFromInt(500)), "magnitude is stored unsigned")
	assert.NoError(t, income.Validate())
	assert.NoError(t, expense.Validate())
}
