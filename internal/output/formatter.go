package output

import (
	"strings"

	"github.com/planwise/forecast/internal/domain"
)

// Formatter defines a pluggable output formatter for the engine's result
// kinds. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Name() string
	FormatCashFlow(p *domain.CashFlowProjection) ([]byte, error)
	FormatWhatIf(p *domain.WhatIfProjection) ([]byte, error)
	FormatPayoff(r *domain.PayoffResult) ([]byte, error)
	FormatStrategyComparison(c *domain.StrategyComparison) ([]byte, error)
	FormatGrowth(g *domain.GrowthProjection) ([]byte, error)
	FormatScenarioComparison(c *domain.ScenarioComparison) ([]byte, error)
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":       "console",
	"text":        "console",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliasMap[n]; ok {
		return alias
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
