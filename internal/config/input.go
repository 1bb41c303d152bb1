package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/planwise/forecast/internal/calculation"
	"github.com/planwise/forecast/internal/domain"
)

// Plan is the parsed plan file: everything the surrounding application
// would normally hand the engines, in one YAML document.
type Plan struct {
	StartingBalance decimal.Decimal     `yaml:"starting_balance" json:"starting_balance"`
	Events          []EventConfig       `yaml:"events" json:"events"`
	Debts           []DebtConfig        `yaml:"debts" json:"debts"`
	Scenarios       []ScenarioConfig    `yaml:"scenarios" json:"scenarios"`
	Returns         *ReturnsTableConfig `yaml:"returns,omitempty" json:"returns,omitempty"`
}

// EventConfig is the YAML shape of a recurring event
type EventConfig struct {
	ID         string          `yaml:"id,omitempty"`
	Name       string          `yaml:"name"`
	Amount     decimal.Decimal `yaml:"amount"`
	Frequency  string          `yaml:"frequency"`
	StartDate  time.Time       `yaml:"start_date"`
	DayOfMonth *int            `yaml:"day_of_month,omitempty"`
	DayOfWeek  *int            `yaml:"day_of_week,omitempty"`
	EndDate    *time.Time      `yaml:"end_date,omitempty"`
	IsIncome   bool            `yaml:"is_income"`
}

// DebtConfig is the YAML shape of a debt
type DebtConfig struct {
	ID              string           `yaml:"id,omitempty"`
	Name            string           `yaml:"name"`
	Balance         decimal.Decimal  `yaml:"balance"`
	InterestRateAPR decimal.Decimal  `yaml:"interest_rate_apr"`
	MinimumPayment  decimal.Decimal  `yaml:"minimum_payment"`
	OriginalBalance *decimal.Decimal `yaml:"original_balance,omitempty"`
}

// ScenarioConfig is the YAML shape of a TSP scenario
type ScenarioConfig struct {
	ID                   string                     `yaml:"id,omitempty"`
	Name                 string                     `yaml:"name"`
	CurrentBalance       decimal.Decimal            `yaml:"current_balance"`
	ContributionPct      decimal.Decimal            `yaml:"contribution_pct"`
	BasePay              decimal.Decimal            `yaml:"base_pay"`
	AnnualPayIncreasePct decimal.Decimal            `yaml:"annual_pay_increase_pct"`
	Allocation           map[string]decimal.Decimal `yaml:"allocation"`
	UseHistoricalReturns bool                       `yaml:"use_historical_returns"`
	CustomAnnualReturn   *decimal.Decimal           `yaml:"custom_annual_return_pct,omitempty"`
	RetirementAge        int                        `yaml:"retirement_age"`
	BirthYear            int                        `yaml:"birth_year"`
	StartYear            int                        `yaml:"start_year"`
}

// ReturnsTableConfig overrides the bundled historical return table
type ReturnsTableConfig struct {
	BaseYear int                          `yaml:"base_year"`
	Funds    map[string][]decimal.Decimal `yaml:"funds"`
}

// InputParser handles parsing and validation of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates the loaded plan by converting every entry into its
// domain form and running the domain invariants.
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if _, err := plan.RecurringEvents(); err != nil {
		return err
	}
	if _, err := plan.DomainDebts(); err != nil {
		return err
	}
	if _, err := plan.TSPScenarios(); err != nil {
		return err
	}
	if _, err := plan.ReturnProvider(); err != nil {
		return err
	}
	return nil
}

// RecurringEvents converts the configured events into domain form
func (p *Plan) RecurringEvents() ([]domain.RecurringEvent, error) {
	events := make([]domain.RecurringEvent, 0, len(p.Events))
	for i, ec := range p.Events {
		id, err := parseID(ec.ID)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		event := domain.RecurringEvent{
			ID:         id,
			Name:       ec.Name,
			Amount:     ec.Amount,
			Frequency:  domain.Frequency(ec.Frequency),
			StartDate:  ec.StartDate,
			DayOfMonth: ec.DayOfMonth,
			EndDate:    ec.EndDate,
			IsIncome:   ec.IsIncome,
		}
		if ec.DayOfWeek != nil {
			if *ec.DayOfWeek < 0 || *ec.DayOfWeek > 6 {
				return nil, fmt.Errorf("event %d: %w", i, domain.NewValidationError("day_of_week", "must be between 0 (Sunday) and 6 (Saturday)"))
			}
			weekday := time.Weekday(*ec.DayOfWeek)
			event.DayOfWeek = &weekday
		}
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// DomainDebts converts the configured debts into domain form
func (p *Plan) DomainDebts() ([]domain.Debt, error) {
	debts := make([]domain.Debt, 0, len(p.Debts))
	for i, dc := range p.Debts {
		id, err := parseID(dc.ID)
		if err != nil {
			return nil, fmt.Errorf("debt %d: %w", i, err)
		}
		debt := domain.Debt{
			ID:              id,
			Name:            dc.Name,
			Balance:         dc.Balance,
			InterestRateAPR: dc.InterestRateAPR,
			MinimumPayment:  dc.MinimumPayment,
			OriginalBalance: dc.OriginalBalance,
		}
		if err := debt.Validate(); err != nil {
			return nil, fmt.Errorf("debt %d: %w", i, err)
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

// TSPScenarios converts the configured scenarios into domain form
func (p *Plan) TSPScenarios() ([]domain.TSPScenario, error) {
	scenarios := make([]domain.TSPScenario, 0, len(p.Scenarios))
	for i, sc := range p.Scenarios {
		id, err := parseID(sc.ID)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		scenario := domain.TSPScenario{
			ID:                   id,
			Name:                 sc.Name,
			CurrentBalance:       sc.CurrentBalance,
			ContributionPct:      sc.ContributionPct,
			BasePay:              sc.BasePay,
			AnnualPayIncreasePct: sc.AnnualPayIncreasePct,
			Allocation:           sc.Allocation,
			UseHistoricalReturns: sc.UseHistoricalReturns,
			CustomAnnualReturn:   sc.CustomAnnualReturn,
			RetirementAge:        sc.RetirementAge,
			BirthYear:            sc.BirthYear,
			StartYear:            sc.StartYear,
		}
		if err := scenario.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// FindScenario resolves a scenario by name. Name resolution is the
// caller-side lookup; the engines themselves never see a not-found case.
func (p *Plan) FindScenario(name string) (domain.TSPScenario, error) {
	scenarios, err := p.TSPScenarios()
	if err != nil {
		return domain.TSPScenario{}, err
	}
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.TSPScenario{}, fmt.Errorf("scenario %q not found in plan", name)
}

// ReturnProvider builds the fund return table: the plan's custom table when
// present, otherwise the bundled historical series.
func (p *Plan) ReturnProvider() (calculation.FundReturnProvider, error) {
	if p.Returns == nil {
		return calculation.DefaultHistoricalReturns(), nil
	}
	provider, err := calculation.NewHistoricalReturns(p.Returns.BaseYear, p.Returns.Funds)
	if err != nil {
		return nil, fmt.Errorf("custom return table: %w", err)
	}
	return provider, nil
}

// parseID parses an optional entity id, minting a fresh one when absent.
func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "not a valid UUID: "+raw)
	}
	return id, nil
}
