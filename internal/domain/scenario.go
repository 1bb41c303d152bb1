package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// allocationTolerance is how far the per-fund percentages may drift from
// exactly 100 before the scenario is rejected (covers rounding in stored
// inputs like 33.33/33.33/33.34).
var allocationTolerance = decimal.NewFromFloat(0.01)

// TSPScenario describes a contribution-growth projection: starting balance,
// contribution rate against base pay, fund allocation, and the return
// assumption to project under.
type TSPScenario struct {
	ID                   uuid.UUID                  `json:"id"`
	Name                 string                     `json:"name"`
	CurrentBalance       decimal.Decimal            `json:"current_balance"`
	ContributionPct      decimal.Decimal            `json:"contribution_pct"`
	BasePay              decimal.Decimal            `json:"base_pay"`
	AnnualPayIncreasePct decimal.Decimal            `json:"annual_pay_increase_pct"`
	Allocation           map[string]decimal.Decimal `json:"allocation"`
	UseHistoricalReturns bool                       `json:"use_historical_returns"`
	CustomAnnualReturn   *decimal.Decimal           `json:"custom_annual_return_pct,omitempty"`
	RetirementAge        int                        `json:"retirement_age"`
	BirthYear            int                        `json:"birth_year"`
	StartYear            int                        `json:"start_year"`
}

// Validate ensures the scenario adheres to domain rules
func (s *TSPScenario) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if s.CurrentBalance.IsNegative() {
		return NewValidationError("current_balance", "cannot be negative")
	}
	if s.ContributionPct.IsNegative() {
		return NewValidationError("contribution_pct", "cannot be negative")
	}
	if s.BasePay.IsNegative() {
		return NewValidationError("base_pay", "cannot be negative")
	}
	if len(s.Allocation) == 0 {
		return NewValidationError("allocation", "at least one fund is required")
	}
	sum := decimal.Zero
	for fund, pct := range s.Allocation {
		if pct.IsNegative() {
			return NewValidationError("allocation", "fund "+fund+" percentage cannot be negative")
		}
		sum = sum.Add(pct)
	}
	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(allocationTolerance) {
		return NewValidationError("allocation", "percentages must sum to 100, got "+sum.String())
	}
	if !s.UseHistoricalReturns && s.CustomAnnualReturn == nil {
		return NewValidationError("custom_annual_return_pct", "required when use_historical_returns is false")
	}
	if s.RetirementAge <= 0 {
		return NewValidationError("retirement_age", "must be positive")
	}
	if s.BirthYear <= 0 {
		return NewValidationError("birth_year", "must be positive")
	}
	if s.StartYear <= 0 {
		return NewValidationError("start_year", "must be positive")
	}
	return nil
}

// RetirementYear returns the calendar year the participant reaches
// RetirementAge.
func (s *TSPScenario) RetirementYear() int {
	return s.BirthYear + s.RetirementAge
}
