package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/planwise/forecast/internal/domain"
)

// CSVFormatter renders results as CSV: one row per day, month, or year
// depending on the result kind.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) FormatCashFlow(p *domain.CashFlowProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Date", "ProjectedBalance", "CumulativeIncome", "CumulativeExpenses"}); err != nil {
		return nil, err
	}
	for _, day := range p.Days {
		row := []string{
			day.Date.Format(dateLayout),
			day.ProjectedBalance.StringFixed(2),
			day.CumulativeIncome.StringFixed(2),
			day.CumulativeExpenses.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatWhatIf(p *domain.WhatIfProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Date", "BaselineBalance", "ScenarioBalance"}); err != nil {
		return nil, err
	}
	for i, day := range p.Baseline.Days {
		row := []string{
			day.Date.Format(dateLayout),
			day.ProjectedBalance.StringFixed(2),
			p.Scenario.Days[i].ProjectedBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatPayoff(r *domain.PayoffResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "TotalPaid", "InterestAccrued"}); err != nil {
		return nil, err
	}
	for _, month := range r.Schedule {
		row := []string{
			intToString(month.MonthIndex),
			month.TotalPaid.StringFixed(2),
			month.InterestAccrued.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatStrategyComparison(cmp *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Strategy", "Outcome", "TotalMonths", "TotalInterest"}); err != nil {
		return nil, err
	}
	for _, r := range []*domain.PayoffResult{&cmp.Snowball, &cmp.Avalanche} {
		row := []string{
			string(r.Strategy),
			string(r.Outcome),
			intToString(r.TotalMonths),
			r.TotalInterest.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatGrowth(g *domain.GrowthProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Age", "StartingBalance", "Contribution", "EmployerMatch", "Growth", "EndingBalance"}); err != nil {
		return nil, err
	}
	for _, yp := range g.Projections {
		row := []string{
			intToString(yp.Year),
			intToString(yp.Age),
			yp.StartingBalance.StringFixed(2),
			yp.Contribution.StringFixed(2),
			yp.EmployerMatch.StringFixed(2),
			yp.Growth.StringFixed(2),
			yp.EndingBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatScenarioComparison(cmp *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	names := make([]string, 0, len(cmp.Scenarios))
	for _, s := range cmp.Scenarios {
		names = append(names, s.ScenarioName)
	}
	sort.Strings(names)

	header := append([]string{"Year"}, names...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, year := range cmp.Years {
		row := []string{intToString(year.Year)}
		for _, name := range names {
			if balance, ok := year.EndingBalances[name]; ok {
				row = append(row, balance.StringFixed(2))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
