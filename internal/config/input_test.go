package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
starting_balance: 2500.50
events:
  - name: Paycheck
    amount: 1500
    frequency: biweekly
    start_date: 2025-01-03
    day_of_week: 5
    is_income: true
  - id: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
    name: Rent
    amount: 1200.00
    frequency: monthly
    start_date: 2025-01-31
debts:
  - name: Card A
    balance: 1000
    interest_rate_apr: 20
    minimum_payment: 50
  - name: Card B
    balance: 500
    interest_rate_apr: 10
    minimum_payment: 25
scenarios:
  - name: baseline
    current_balance: 50000
    contribution_pct: 5
    base_pay: 85000
    annual_pay_increase_pct: 2
    allocation:
      C: 60
      S: 40
    use_historical_returns: true
    retirement_age: 62
    birth_year: 1985
    start_year: 2026
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	plan, err := NewInputParser().LoadFromFile(writePlanFile(t, samplePlan))
	require.NoError(t, err)

	assert.True(t, plan.StartingBalance.Equal(decimal.NewFromFloat(2500.50)))

	events, err := plan.RecurringEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Paycheck", events[0].Name)
	assert.True(t, events[0].IsIncome)
	require.NotNil(t, events[0].DayOfWeek)
	assert.Equal(t, time.Friday, *events[0].DayOfWeek)
	assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), events[0].StartDate)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", events[1].ID.String())

	debts, err := plan.DomainDebts()
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.True(t, debts[0].InterestRateAPR.Equal(decimal.NewFromInt(20)))
	assert.NotEqual(t, debts[0].ID, debts[1].ID, "omitted ids are minted uniquely")

	scenarios, err := plan.TSPScenarios()
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "baseline", scenarios[0].Name)
	assert.True(t, scenarios[0].Allocation["C"].Equal(decimal.NewFromInt(60)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writePlanFile(t, "events: [broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFileRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "bad event frequency",
			yaml: `
events:
  - name: Rent
    amount: 100
    frequency: hourly
    start_date: 2025-01-01
`,
			wantErr: "invalid frequency",
		},
		{
			name: "day of week out of range",
			yaml: `
events:
  - name: Paycheck
    amount: 100
    frequency: weekly
    start_date: 2025-01-01
    day_of_week: 7
`,
			wantErr: "day_of_week",
		},
		{
			name: "malformed id",
			yaml: `
debts:
  - id: not-a-uuid
    name: Card
    balance: 100
    interest_rate_apr: 10
    minimum_payment: 5
`,
			wantErr: "not a valid UUID",
		},
		{
			name: "scenario allocation does not sum",
			yaml: `
scenarios:
  - name: broken
    current_balance: 1000
    contribution_pct: 5
    base_pay: 50000
    allocation:
      C: 50
    use_historical_returns: true
    retirement_age: 62
    birth_year: 1985
    start_year: 2026
`,
			wantErr: "allocation",
		},
		{
			name: "custom return table with mismatched series",
			yaml: `
returns:
  base_year: 2020
  funds:
    C: [0.10, 0.20]
    G: [0.02]
`,
			wantErr: "custom return table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(writePlanFile(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindScenario(t *testing.T) {
	plan, err := NewInputParser().LoadFromFile(writePlanFile(t, samplePlan))
	require.NoError(t, err)

	found, err := plan.FindScenario("baseline")
	require.NoError(t, err)
	assert.Equal(t, "baseline", found.Name)

	_, err = plan.FindScenario("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReturnProvider(t *testing.T) {
	t.Run("defaults to the bundled table", func(t *testing.T) {
		plan := &Plan{}
		provider, err := plan.ReturnProvider()
		require.NoError(t, err)
		assert.Contains(t, provider.Funds(), "C")
	})

	t.Run("custom table overrides", func(t *testing.T) {
		plan := &Plan{Returns: &ReturnsTableConfig{
			BaseYear: 2024,
			Funds: map[string][]decimal.Decimal{
				"X": {decimal.NewFromFloat(0.05)},
			},
		}}
		provider, err := plan.ReturnProvider()
		require.NoError(t, err)
		rate, err := provider.AnnualReturn("X", 2024)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromFloat(0.05)))
	})
}
