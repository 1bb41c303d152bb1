package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/planwise/forecast/internal/calculation"
	"github.com/planwise/forecast/internal/domain"
)

var (
	flagStrategy     string
	flagExtra        string
	flagSchedule     bool
	flagCompareExtra string
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Simulate a debt payoff plan under one strategy",
	RunE:  runPayoff,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run snowball and avalanche on the same debts and diff them",
	RunE:  runCompare,
}

func init() {
	payoffCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "avalanche", "Payoff strategy: snowball or avalanche")
	payoffCmd.Flags().StringVarP(&flagExtra, "extra", "x", "0", "Extra monthly payment")
	payoffCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Include the full monthly schedule")

	compareCmd.Flags().StringVarP(&flagCompareExtra, "extra", "x", "0", "Extra monthly payment")
}

func runPayoff(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}
	debts, err := plan.DomainDebts()
	if err != nil {
		return err
	}
	strategy, err := domain.ParsePayoffStrategy(flagStrategy)
	if err != nil {
		return err
	}
	extra, err := decimal.NewFromString(flagExtra)
	if err != nil {
		return fmt.Errorf("invalid --extra: %w", err)
	}

	simulator := calculation.NewPayoffSimulator().WithLogger(engineLogger())
	result, err := simulator.Simulate(debts, strategy, extra, time.Now(), flagSchedule)
	if err != nil {
		return err
	}
	data, err := f.FormatPayoff(&result)
	if err != nil {
		return err
	}
	emit(data)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}
	debts, err := plan.DomainDebts()
	if err != nil {
		return err
	}
	extra, err := decimal.NewFromString(flagCompareExtra)
	if err != nil {
		return fmt.Errorf("invalid --extra: %w", err)
	}

	simulator := calculation.NewPayoffSimulator().WithLogger(engineLogger())
	comparison, err := simulator.CompareStrategies(debts, extra, time.Now())
	if err != nil {
		return err
	}
	data, err := f.FormatStrategyComparison(&comparison)
	if err != nil {
		return err
	}
	emit(data)
	return nil
}
