package cli

import (
	"github.com/spf13/cobra"

	"github.com/planwise/forecast/internal/calculation"
)

var flagScenario string

var tspCmd = &cobra.Command{
	Use:   "tsp",
	Short: "Project TSP contribution growth for plan scenarios",
	Long:  "Projects one scenario by name, or compares all plan scenarios aligned by calendar year when no name is given.",
	RunE:  runTSP,
}

func init() {
	tspCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario name (omit to compare all)")
}

func runTSP(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}
	provider, err := plan.ReturnProvider()
	if err != nil {
		return err
	}

	projector := calculation.NewGrowthProjector(provider).WithLogger(engineLogger())

	if flagScenario != "" {
		scenario, err := plan.FindScenario(flagScenario)
		if err != nil {
			return err
		}
		projection, err := projector.Project(scenario)
		if err != nil {
			return err
		}
		data, err := f.FormatGrowth(&projection)
		if err != nil {
			return err
		}
		emit(data)
		return nil
	}

	scenarios, err := plan.TSPScenarios()
	if err != nil {
		return err
	}
	comparison, err := projector.CompareScenarios(scenarios)
	if err != nil {
		return err
	}
	data, err := f.FormatScenarioComparison(&comparison)
	if err != nil {
		return err
	}
	emit(data)
	return nil
}
