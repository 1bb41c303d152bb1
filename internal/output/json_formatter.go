package output

import (
	"encoding/json"

	"github.com/planwise/forecast/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatCashFlow(p *domain.CashFlowProjection) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func (j JSONFormatter) FormatWhatIf(p *domain.WhatIfProjection) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func (j JSONFormatter) FormatPayoff(r *domain.PayoffResult) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (j JSONFormatter) FormatStrategyComparison(c *domain.StrategyComparison) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

func (j JSONFormatter) FormatGrowth(g *domain.GrowthProjection) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

func (j JSONFormatter) FormatScenarioComparison(c *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
