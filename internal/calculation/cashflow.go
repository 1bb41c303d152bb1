package calculation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planwise/forecast/internal/domain"
	"github.com/planwise/forecast/pkg/dateutil"
)

// CashFlowProjector turns recurring income/expense events plus a starting
// balance into a day-by-day projected balance series. It is pure and
// stateless: identical inputs always produce identical series.
type CashFlowProjector struct {
	logger Logger
}

// NewCashFlowProjector creates a projector with a no-op logger
func NewCashFlowProjector() *CashFlowProjector {
	return &CashFlowProjector{logger: NopLogger{}}
}

// WithLogger replaces the projector's logger
func (p *CashFlowProjector) WithLogger(logger Logger) *CashFlowProjector {
	p.logger = logger
	return p
}

// Project expands every event over the horizon and accumulates a running
// balance. The horizon covers `days` calendar days starting at `start`.
func (p *CashFlowProjector) Project(startingBalance decimal.Decimal, events []domain.RecurringEvent, start time.Time, days int) (domain.CashFlowProjection, error) {
	if days <= 0 {
		return domain.CashFlowProjection{}, domain.NewValidationError("days", "must be positive")
	}
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return domain.CashFlowProjection{}, err
		}
	}

	start = dateutil.MidnightUTC(start)
	end := start.AddDate(0, 0, days-1)

	// Expand each event once over the window and bucket occurrences by day.
	occurrences := make(map[time.Time][]domain.CashFlowEvent)
	for i := range events {
		event := events[i]
		schedule := NewSchedule(event)
		for _, date := range schedule.Occurrences(start, end) {
			occurrences[date] = append(occurrences[date], domain.CashFlowEvent{
				EventID: event.ID,
				Name:    event.Name,
				Amount:  event.SignedAmount(),
			})
		}
	}
	p.logger.Debugf("cashflow: expanded %d events over %d days", len(events), days)

	projection := domain.CashFlowProjection{
		StartingBalance: startingBalance,
		Days:            make([]domain.CashFlowDay, 0, days),
	}

	balance := startingBalance
	income := decimal.Zero
	expenses := decimal.Zero
	lowest := startingBalance
	lowestDate := start

	for offset := 0; offset < days; offset++ {
		date := start.AddDate(0, 0, offset)
		dayEvents := occurrences[date]
		for _, ev := range dayEvents {
			if ev.Amount.IsNegative() {
				expenses = expenses.Add(ev.Amount.Neg())
			} else {
				income = income.Add(ev.Amount)
			}
			balance = balance.Add(ev.Amount)
		}

		if balance.LessThan(lowest) {
			lowest = balance
			lowestDate = date
		}

		projection.Days = append(projection.Days, domain.CashFlowDay{
			Date:               date,
			ProjectedBalance:   balance,
			Events:             dayEvents,
			CumulativeIncome:   income,
			CumulativeExpenses: expenses,
		})
	}

	projection.TotalIncome = income
	projection.TotalExpenses = expenses
	projection.EndingBalance = balance
	projection.LowestBalance = lowest
	projection.LowestBalanceDate = lowestDate
	return projection, nil
}

// ProjectWithScenario runs the identical projection twice: once as-is and
// once with a single synthetic what-if event appended. The baseline event
// list is never mutated.
func (p *CashFlowProjector) ProjectWithScenario(startingBalance decimal.Decimal, events []domain.RecurringEvent, start time.Time, days int, scenario domain.RecurringEvent) (domain.WhatIfProjection, error) {
	baseline, err := p.Project(startingBalance, events, start, days)
	if err != nil {
		return domain.WhatIfProjection{}, err
	}

	withScenario := make([]domain.RecurringEvent, len(events), len(events)+1)
	copy(withScenario, events)
	withScenario = append(withScenario, scenario)

	variant, err := p.Project(startingBalance, withScenario, start, days)
	if err != nil {
		return domain.WhatIfProjection{}, err
	}

	return domain.WhatIfProjection{Baseline: baseline, Scenario: variant}, nil
}

// NewWhatIfEvent builds a synthetic recurring event for scenario
// projections. A positive amount is treated as income, a negative amount as
// an expense; the event anchors on the projection window's first day.
func NewWhatIfEvent(name string, amount decimal.Decimal, frequency domain.Frequency, anchor time.Time) domain.RecurringEvent {
	return domain.RecurringEvent{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount.Abs(),
		Frequency: frequency,
		StartDate: dateutil.MidnightUTC(anchor),
		IsIncome:  !amount.IsNegative(),
	}
}
