package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoffStrategy defines the total order in which debts receive extra
// payments
type PayoffStrategy string

const (
	// StrategySnowball targets the smallest balance first
	StrategySnowball PayoffStrategy = "snowball"
	// StrategyAvalanche targets the highest interest rate first
	StrategyAvalanche PayoffStrategy = "avalanche"
)

// IsValid reports whether the strategy is one of the supported values
func (s PayoffStrategy) IsValid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

// ParsePayoffStrategy converts a string into a PayoffStrategy
func ParsePayoffStrategy(value string) (PayoffStrategy, error) {
	s := PayoffStrategy(value)
	if !s.IsValid() {
		return "", NewValidationError("strategy", "must be snowball or avalanche")
	}
	return s, nil
}

// Debt represents a single outstanding debt. Debts are created and edited
// by the surrounding application; the simulator treats them as read-only
// snapshots.
type Debt struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Balance         decimal.Decimal  `json:"balance"`
	InterestRateAPR decimal.Decimal  `json:"interest_rate_apr"`
	MinimumPayment  decimal.Decimal  `json:"minimum_payment"`
	OriginalBalance *decimal.Decimal `json:"original_balance,omitempty"`
}

// Validate ensures the debt adheres to domain rules
func (d *Debt) Validate() error {
	if d.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if d.Balance.IsNegative() {
		return NewValidationError("balance", "cannot be negative")
	}
	if d.InterestRateAPR.IsNegative() {
		return NewValidationError("interest_rate_apr", "cannot be negative")
	}
	if d.MinimumPayment.IsNegative() {
		return NewValidationError("minimum_payment", "cannot be negative")
	}
	return nil
}

// MonthlyRate returns the periodic interest rate for one month,
// i.e. APR / 12 / 100.
func (d *Debt) MonthlyRate() decimal.Decimal {
	return d.InterestRateAPR.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
}
