package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwise/forecast/internal/calculation"
	"github.com/planwise/forecast/internal/config"
	"github.com/planwise/forecast/internal/output"
)

var (
	flagPlan    string
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Personal finance forecasting CLI",
	Long:  "Project cash flow, simulate debt payoff strategies, and grow TSP scenarios from a YAML plan file.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "plan.yaml", "Plan file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, json, csv")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine progress to stderr")

	rootCmd.AddCommand(cashflowCmd)
	rootCmd.AddCommand(payoffCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tspCmd)
}

// loadPlan is the shared plan loading path used by all commands.
func loadPlan() (*config.Plan, error) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(flagPlan)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return plan, nil
}

// formatter resolves the --format flag to a registered formatter.
func formatter() (output.Formatter, error) {
	f := output.GetFormatterByName(flagFormat)
	if f == nil {
		return nil, fmt.Errorf("unknown format %q (expected console, json, or csv)", flagFormat)
	}
	return f, nil
}

// engineLogger returns a stderr logger when --verbose is set, otherwise the
// engines stay silent.
func engineLogger() calculation.Logger {
	if flagVerbose {
		return stderrLogger{}
	}
	return calculation.NopLogger{}
}

// stderrLogger writes engine diagnostics to stderr so stdout stays clean
// for formatted results.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "info: "+format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func emit(data []byte) {
	os.Stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Println()
	}
}
