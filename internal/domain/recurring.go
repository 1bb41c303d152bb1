package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring event repeats
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the closed set of
// supported values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// MonthStep returns the calendar-month stride for month-based frequencies
// and zero for day-based ones.
func (f Frequency) MonthStep() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyYearly:
		return 12
	}
	return 0
}

// DayStep returns the day stride for week-based frequencies and zero for
// month-based ones.
func (f Frequency) DayStep() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	}
	return 0
}

// RecurringEvent represents a repeating income or expense definition. The
// amount is a signed magnitude: always non-negative, with the sign implied
// by IsIncome.
type RecurringEvent struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Frequency  Frequency       `json:"frequency"`
	StartDate  time.Time       `json:"start_date"`
	DayOfMonth *int            `json:"day_of_month,omitempty"`
	DayOfWeek  *time.Weekday   `json:"day_of_week,omitempty"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	IsIncome   bool            `json:"is_income"`
}

// Validate ensures the event adheres to domain rules
func (e *RecurringEvent) Validate() error {
	if e.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if e.Amount.IsNegative() {
		return NewValidationError("amount", "cannot be negative")
	}
	if !e.Frequency.IsValid() {
		return NewValidationError("frequency", "unknown frequency "+string(e.Frequency))
	}
	if e.StartDate.IsZero() {
		return NewValidationError("start_date", "is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return NewValidationError("end_date", "cannot be before start_date")
	}
	if e.DayOfMonth != nil && (*e.DayOfMonth < 1 || *e.DayOfMonth > 31) {
		return NewValidationError("day_of_month", "must be between 1 and 31")
	}
	return nil
}

// SignedAmount returns the amount with the sign implied by IsIncome:
// positive for income, negative for expenses.
func (e *RecurringEvent) SignedAmount() decimal.Decimal {
	if e.IsIncome {
		return e.Amount
	}
	return e.Amount.Neg()
}

// AnchorDay returns the day-of-month the schedule preserves when stepping
// by calendar months: DayOfMonth when set, otherwise the start date's day.
func (e *RecurringEvent) AnchorDay() int {
	if e.DayOfMonth != nil {
		return *e.DayOfMonth
	}
	return e.StartDate.Day()
}
