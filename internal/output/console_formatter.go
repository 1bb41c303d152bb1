package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/planwise/forecast/internal/domain"
)

const dateLayout = "2006-01-02"

// ConsoleFormatter renders results as aligned plain-text tables for
// terminal display.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatCashFlow(p *domain.CashFlowProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	c.writeCashFlow(buf, "CASH FLOW FORECAST", p)
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatWhatIf(p *domain.WhatIfProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	c.writeCashFlow(buf, "BASELINE", &p.Baseline)
	fmt.Fprintln(buf)
	c.writeCashFlow(buf, "WHAT-IF SCENARIO", &p.Scenario)
	fmt.Fprintln(buf)
	diff := p.Scenario.EndingBalance.Sub(p.Baseline.EndingBalance)
	fmt.Fprintf(buf, "Scenario impact on ending balance: %s\n", FormatCurrency(diff))
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeCashFlow(buf *bytes.Buffer, title string, p *domain.CashFlowProjection) {
	fmt.Fprintf(buf, "%s (%d days)\n", title, len(p.Days))
	fmt.Fprintf(buf, "Starting balance: %s\n\n", FormatCurrency(p.StartingBalance))
	fmt.Fprintf(buf, "%-12s %14s %14s %14s\n", "Date", "Balance", "Income", "Expenses")
	for _, day := range p.Days {
		// Only days with activity are listed; the summary carries the rest.
		if len(day.Events) == 0 {
			continue
		}
		fmt.Fprintf(buf, "%-12s %14s %14s %14s\n",
			day.Date.Format(dateLayout),
			FormatCurrency(day.ProjectedBalance),
			FormatCurrency(day.CumulativeIncome),
			FormatCurrency(day.CumulativeExpenses))
	}
	fmt.Fprintf(buf, "\nEnding balance:  %s\n", FormatCurrency(p.EndingBalance))
	fmt.Fprintf(buf, "Total income:    %s\n", FormatCurrency(p.TotalIncome))
	fmt.Fprintf(buf, "Total expenses:  %s\n", FormatCurrency(p.TotalExpenses))
	fmt.Fprintf(buf, "Lowest balance:  %s on %s\n", FormatCurrency(p.LowestBalance), p.LowestBalanceDate.Format(dateLayout))
}

func (c ConsoleFormatter) FormatPayoff(r *domain.PayoffResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "DEBT PAYOFF PLAN (%s)\n\n", r.Strategy)
	if !r.PaidOff() {
		fmt.Fprintf(buf, "Does not pay off under current inputs within %d months.\n", r.TotalMonths)
		fmt.Fprintf(buf, "Interest accrued over simulated period: %s\n", FormatCurrency(r.TotalInterest))
		return buf.Bytes(), nil
	}
	fmt.Fprintf(buf, "Debt free in:    %d months\n", r.TotalMonths)
	fmt.Fprintf(buf, "Payoff date:     %s\n", r.PayoffDate.Format(dateLayout))
	fmt.Fprintf(buf, "Total interest:  %s\n", FormatCurrency(r.TotalInterest))
	if len(r.Schedule) > 0 {
		fmt.Fprintf(buf, "\n%-8s %14s %14s\n", "Month", "Paid", "Interest")
		for _, month := range r.Schedule {
			fmt.Fprintf(buf, "%-8d %14s %14s\n",
				month.MonthIndex,
				FormatCurrency(month.TotalPaid),
				FormatCurrency(month.InterestAccrued))
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatStrategyComparison(cmp *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "STRATEGY COMPARISON\n\n")
	fmt.Fprintf(buf, "%-12s %10s %16s %14s\n", "Strategy", "Months", "Total Interest", "Payoff Date")
	for _, r := range []*domain.PayoffResult{&cmp.Snowball, &cmp.Avalanche} {
		date := "never"
		if r.PaidOff() {
			date = r.PayoffDate.Format(dateLayout)
		}
		fmt.Fprintf(buf, "%-12s %10d %16s %14s\n", r.Strategy, r.TotalMonths, FormatCurrency(r.TotalInterest), date)
	}
	fmt.Fprintf(buf, "\nAvalanche saves %s in interest", FormatCurrency(cmp.InterestSaved))
	switch {
	case cmp.MonthsSaved > 0:
		fmt.Fprintf(buf, " and %d months.\n", cmp.MonthsSaved)
	case cmp.MonthsSaved < 0:
		fmt.Fprintf(buf, " but takes %d more months.\n", -cmp.MonthsSaved)
	default:
		fmt.Fprintf(buf, " with no difference in months.\n")
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatGrowth(g *domain.GrowthProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "TSP PROJECTION: %s\n\n", g.ScenarioName)
	fmt.Fprintf(buf, "%-6s %-5s %16s %14s %12s %14s %16s\n",
		"Year", "Age", "Starting", "Contribution", "Match", "Growth", "Ending")
	for _, yp := range g.Projections {
		fmt.Fprintf(buf, "%-6d %-5d %16s %14s %12s %14s %16s\n",
			yp.Year, yp.Age,
			FormatCurrency(yp.StartingBalance),
			FormatCurrency(yp.Contribution),
			FormatCurrency(yp.EmployerMatch),
			FormatCurrency(yp.Growth),
			FormatCurrency(yp.EndingBalance))
	}
	fmt.Fprintf(buf, "\nFinal balance:        %s\n", FormatCurrency(g.FinalBalance))
	fmt.Fprintf(buf, "Total contributions:  %s\n", FormatCurrency(g.TotalContributions))
	fmt.Fprintf(buf, "Total employer match: %s\n", FormatCurrency(g.TotalEmployerMatch))
	fmt.Fprintf(buf, "Total growth:         %s\n", FormatCurrency(g.TotalGrowth))
	fmt.Fprintf(buf, "Average return:       %s\n", FormatRate(g.AverageReturnRate))
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatScenarioComparison(cmp *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "SCENARIO COMPARISON\n\n")

	names := make([]string, 0, len(cmp.Scenarios))
	for _, s := range cmp.Scenarios {
		names = append(names, s.ScenarioName)
	}
	sort.Strings(names)

	fmt.Fprintf(buf, "%-6s", "Year")
	for _, name := range names {
		fmt.Fprintf(buf, " %16s", name)
	}
	fmt.Fprintln(buf)

	for _, year := range cmp.Years {
		fmt.Fprintf(buf, "%-6d", year.Year)
		for _, name := range names {
			if balance, ok := year.EndingBalances[name]; ok {
				fmt.Fprintf(buf, " %16s", FormatCurrency(balance))
			} else {
				fmt.Fprintf(buf, " %16s", "-")
			}
		}
		fmt.Fprintln(buf)
	}
	return buf.Bytes(), nil
}
