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
	flagDays         int
	flagStart        string
	flagScenarioName string
	flagScenarioAmt  string
	flagScenarioFreq string
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Project day-by-day cash flow from the plan's recurring events",
	RunE:  runCashflow,
}

func init() {
	cashflowCmd.Flags().IntVarP(&flagDays, "days", "n", 30, "Projection horizon in days")
	cashflowCmd.Flags().StringVar(&flagStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	cashflowCmd.Flags().StringVar(&flagScenarioName, "scenario-name", "", "What-if event name")
	cashflowCmd.Flags().StringVar(&flagScenarioAmt, "scenario-amount", "", "What-if amount (negative for an expense)")
	cashflowCmd.Flags().StringVar(&flagScenarioFreq, "scenario-frequency", "monthly", "What-if frequency")
}

func runCashflow(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}
	events, err := plan.RecurringEvents()
	if err != nil {
		return err
	}

	start := time.Now()
	if flagStart != "" {
		start, err = time.Parse("2006-01-02", flagStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
	}

	projector := calculation.NewCashFlowProjector().WithLogger(engineLogger())

	if flagScenarioAmt == "" {
		projection, err := projector.Project(plan.StartingBalance, events, start, flagDays)
		if err != nil {
			return err
		}
		data, err := f.FormatCashFlow(&projection)
		if err != nil {
			return err
		}
		emit(data)
		return nil
	}

	amount, err := decimal.NewFromString(flagScenarioAmt)
	if err != nil {
		return fmt.Errorf("invalid --scenario-amount: %w", err)
	}
	name := flagScenarioName
	if name == "" {
		name = "what-if"
	}
	scenario := calculation.NewWhatIfEvent(name, amount, domain.Frequency(flagScenarioFreq), start)

	projection, err := projector.ProjectWithScenario(plan.StartingBalance, events, start, flagDays, scenario)
	if err != nil {
		return err
	}
	data, err := f.FormatWhatIf(&projection)
	if err != nil {
		return err
	}
	emit(data)
	return nil
}
