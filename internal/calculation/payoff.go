package calculation

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planwise/forecast/internal/domain"
	"github.com/planwise/forecast/pkg/dateutil"
)

// MaxPayoffMonths bounds the amortization loop at 50 years. Inputs whose
// minimum payments never outrun accruing interest terminate here with a
// distinct never-pays-off outcome instead of looping forever.
const MaxPayoffMonths = 600

// PayoffSimulator runs bounded month-by-month debt amortization under a
// payoff strategy. Pure and stateless; safe for concurrent use.
type PayoffSimulator struct {
	logger    Logger
	maxMonths int
}

// NewPayoffSimulator creates a simulator with the default iteration cap
func NewPayoffSimulator() *PayoffSimulator {
	return &PayoffSimulator{logger: NopLogger{}, maxMonths: MaxPayoffMonths}
}

// WithLogger replaces the simulator's logger
func (s *PayoffSimulator) WithLogger(logger Logger) *PayoffSimulator {
	s.logger = logger
	return s
}

// workingDebt tracks one debt's mutable state during a simulation run.
type workingDebt struct {
	debt    domain.Debt
	balance decimal.Decimal
	retired bool
}

// Simulate amortizes the debts month by month until payoff or the iteration
// cap. When withSchedule is true the result carries the full monthly
// schedule.
func (s *PayoffSimulator) Simulate(debts []domain.Debt, strategy domain.PayoffStrategy, extraPayment decimal.Decimal, start time.Time, withSchedule bool) (domain.PayoffResult, error) {
	if !strategy.IsValid() {
		return domain.PayoffResult{}, domain.NewValidationError("strategy", "must be snowball or avalanche")
	}
	if extraPayment.IsNegative() {
		return domain.PayoffResult{}, domain.NewValidationError("extra_payment", "cannot be negative")
	}
	seen := make(map[uuid.UUID]bool, len(debts))
	for i := range debts {
		if err := debts[i].Validate(); err != nil {
			return domain.PayoffResult{}, err
		}
		if seen[debts[i].ID] {
			return domain.PayoffResult{}, domain.NewValidationError("id", "duplicate debt id "+debts[i].ID.String())
		}
		seen[debts[i].ID] = true
	}

	ordered := orderByStrategy(debts, strategy)

	working := make([]*workingDebt, len(ordered))
	for i, d := range ordered {
		working[i] = &workingDebt{debt: d, balance: d.Balance, retired: !d.Balance.IsPositive()}
	}

	result := domain.PayoffResult{
		Strategy:      strategy,
		Outcome:       domain.OutcomePaidOff,
		TotalInterest: decimal.Zero,
	}

	freedMinimums := decimal.Zero
	months := 0

	for anyOpen(working) && months < s.maxMonths {
		months++

		interestThisMonth := decimal.Zero
		payments := make(map[uuid.UUID]decimal.Decimal, len(working))
		totalPaid := decimal.Zero

		// Pass 1: accrue interest on every open debt.
		for _, w := range working {
			if w.retired {
				continue
			}
			interest := w.balance.Mul(w.debt.MonthlyRate())
			w.balance = w.balance.Add(interest)
			interestThisMonth = interestThisMonth.Add(interest)
		}
		result.TotalInterest = result.TotalInterest.Add(interestThisMonth)

		// Pass 2: minimum payments, capped at what the debt can absorb.
		// Any overshoot is freed cash for this month's extra pool; the
		// minimums of debts retired in earlier months joined permanently.
		pool := extraPayment.Add(freedMinimums)
		for _, w := range working {
			if w.retired {
				continue
			}
			payment := decimal.Min(w.debt.MinimumPayment, w.balance)
			overshoot := w.debt.MinimumPayment.Sub(payment)
			if overshoot.IsPositive() {
				pool = pool.Add(overshoot)
			}
			w.balance = w.balance.Sub(payment)
			payments[w.debt.ID] = payments[w.debt.ID].Add(payment)
			totalPaid = totalPaid.Add(payment)
			if !w.balance.IsPositive() {
				w.retired = true
				freedMinimums = freedMinimums.Add(w.debt.MinimumPayment)
			}
		}

		// Pass 3: extra pool goes to the highest-priority open debt,
		// cascading down the strategy order when a debt retires mid-month.
		for _, w := range working {
			if w.retired || !pool.IsPositive() {
				continue
			}
			payment := decimal.Min(pool, w.balance)
			w.balance = w.balance.Sub(payment)
			pool = pool.Sub(payment)
			payments[w.debt.ID] = payments[w.debt.ID].Add(payment)
			totalPaid = totalPaid.Add(payment)
			if !w.balance.IsPositive() {
				w.retired = true
				freedMinimums = freedMinimums.Add(w.debt.MinimumPayment)
			}
		}

		if withSchedule {
			balances := make(map[uuid.UUID]decimal.Decimal, len(working))
			for _, w := range working {
				balances[w.debt.ID] = w.balance
			}
			result.Schedule = append(result.Schedule, domain.AmortizationMonth{
				MonthIndex:      months,
				BalancesByDebt:  balances,
				InterestAccrued: interestThisMonth,
				PaymentsApplied: payments,
				TotalPaid:       totalPaid,
			})
		}
	}

	result.TotalMonths = months
	if anyOpen(working) {
		result.Outcome = domain.OutcomeNeverPaysOff
		s.logger.Warnf("payoff: %s plan did not pay off within %d months", strategy, s.maxMonths)
		return result, nil
	}

	payoffDate := dateutil.AddMonthsClamped(dateutil.MidnightUTC(start), months, start.Day())
	result.PayoffDate = &payoffDate
	return result, nil
}

// orderByStrategy returns the debts in strategy priority order. Snowball is
// balance ascending, avalanche is APR descending; both break ties by debt
// id ascending so equal inputs always produce the same order regardless of
// caller ordering.
func orderByStrategy(debts []domain.Debt, strategy domain.PayoffStrategy) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)
	sort.Slice(ordered, func(i, j int) bool {
		var primaryLess, primaryEqual bool
		if strategy == domain.StrategySnowball {
			primaryLess = ordered[i].Balance.LessThan(ordered[j].Balance)
			primaryEqual = ordered[i].Balance.Equal(ordered[j].Balance)
		} else {
			primaryLess = ordered[i].InterestRateAPR.GreaterThan(ordered[j].InterestRateAPR)
			primaryEqual = ordered[i].InterestRateAPR.Equal(ordered[j].InterestRateAPR)
		}
		if !primaryEqual {
			return primaryLess
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})
	return ordered
}

func anyOpen(working []*workingDebt) bool {
	for _, w := range working {
		if !w.retired {
			return true
		}
	}
	return false
}
