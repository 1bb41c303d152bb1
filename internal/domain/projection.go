package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlowEvent is a single occurrence of a recurring event on a specific
// day, with the sign already applied (income positive, expense negative).
type CashFlowEvent struct {
	EventID uuid.UUID       `json:"event_id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
}

// CashFlowDay represents one projected day: the balance at end of day plus
// the running totals that produced it. For every day,
// CumulativeIncome - CumulativeExpenses + starting balance equals
// ProjectedBalance.
type CashFlowDay struct {
	Date               time.Time       `json:"date"`
	ProjectedBalance   decimal.Decimal `json:"projected_balance"`
	Events             []CashFlowEvent `json:"events,omitempty"`
	CumulativeIncome   decimal.Decimal `json:"cumulative_income"`
	CumulativeExpenses decimal.Decimal `json:"cumulative_expenses"`
}

// NetChange returns the day's net movement (income minus expenses for that
// day only).
func (d *CashFlowDay) NetChange() decimal.Decimal {
	net := decimal.Zero
	for _, ev := range d.Events {
		net = net.Add(ev.Amount)
	}
	return net
}

// CashFlowProjection is the full day-by-day series plus summary figures.
type CashFlowProjection struct {
	StartingBalance   decimal.Decimal `json:"starting_balance"`
	Days              []CashFlowDay   `json:"days"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	EndingBalance     decimal.Decimal `json:"ending_balance"`
	LowestBalance     decimal.Decimal `json:"lowest_balance"`
	LowestBalanceDate time.Time       `json:"lowest_balance_date"`
}

// WhatIfProjection pairs a baseline cash-flow series with a variant that
// includes one injected synthetic event.
type WhatIfProjection struct {
	Baseline CashFlowProjection `json:"baseline"`
	Scenario CashFlowProjection `json:"scenario"`
}

// AmortizationMonth is one month of the payoff schedule. Produced once,
// never mutated.
type AmortizationMonth struct {
	MonthIndex      int                           `json:"month_index"`
	BalancesByDebt  map[uuid.UUID]decimal.Decimal `json:"balances_by_debt"`
	InterestAccrued decimal.Decimal               `json:"interest_accrued"`
	PaymentsApplied map[uuid.UUID]decimal.Decimal `json:"payments_applied"`
	TotalPaid       decimal.Decimal               `json:"total_paid"`
}

// PayoffOutcome tags whether the simulation reached full payoff within the
// iteration cap.
type PayoffOutcome string

const (
	// OutcomePaidOff means every debt reached zero within the cap
	OutcomePaidOff PayoffOutcome = "paid_off"
	// OutcomeNeverPaysOff means the cap was exhausted with balances still
	// outstanding; the totals describe the simulated months, not a payoff
	OutcomeNeverPaysOff PayoffOutcome = "never_pays_off"
)

// PayoffResult is the outcome of a single payoff simulation.
type PayoffResult struct {
	Strategy      PayoffStrategy      `json:"strategy"`
	Outcome       PayoffOutcome       `json:"outcome"`
	TotalMonths   int                 `json:"total_months"`
	TotalInterest decimal.Decimal     `json:"total_interest"`
	PayoffDate    *time.Time          `json:"payoff_date,omitempty"`
	Schedule      []AmortizationMonth `json:"monthly_schedule,omitempty"`
}

// PaidOff reports whether the debts were fully retired
func (r *PayoffResult) PaidOff() bool {
	return r.Outcome == OutcomePaidOff
}

// StrategyComparison holds both strategy runs over identical inputs and
// their signed difference. Saved figures are snowball minus avalanche and
// deliberately unclamped: avalanche always wins or ties on interest but can
// lose on months for some debt mixes, and that asymmetry is reported rather
// than hidden.
type StrategyComparison struct {
	Snowball      PayoffResult    `json:"snowball"`
	Avalanche     PayoffResult    `json:"avalanche"`
	MonthsSaved   int             `json:"months_saved"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
}

// YearProjection is one simulated year of contribution growth. Ordered and
// immutable once produced.
type YearProjection struct {
	Year            int             `json:"year"`
	Age             int             `json:"age"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	Contribution    decimal.Decimal `json:"contribution"`
	EmployerMatch   decimal.Decimal `json:"employer_match"`
	Growth          decimal.Decimal `json:"growth"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
}

// GrowthProjection is the year-by-year series plus aggregates for one
// scenario.
type GrowthProjection struct {
	ScenarioName       string           `json:"scenario_name"`
	Projections        []YearProjection `json:"projections"`
	FinalBalance       decimal.Decimal  `json:"final_balance"`
	TotalContributions decimal.Decimal  `json:"total_contributions"`
	TotalEmployerMatch decimal.Decimal  `json:"total_employer_match"`
	TotalGrowth        decimal.Decimal  `json:"total_growth"`
	AverageReturnRate  decimal.Decimal  `json:"average_return_rate"`
}

// ComparisonYear is one calendar year across compared scenarios. A scenario
// with no projection for that year is absent from the map, not zero.
type ComparisonYear struct {
	Year           int                        `json:"year"`
	EndingBalances map[string]decimal.Decimal `json:"ending_balances"`
}

// ScenarioComparison aligns multiple growth projections by calendar year so
// scenarios with different start years or durations can be charted
// together.
type ScenarioComparison struct {
	Scenarios []GrowthProjection `json:"scenarios"`
	Years     []ComparisonYear   `json:"years"`
}
