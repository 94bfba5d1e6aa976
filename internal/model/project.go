// Package model defines domain types for pdash project reports.
package model

// Severity tags a risk as High or Low.
type Severity string

const (
	SeverityHigh Severity = "High"
	SeverityLow  Severity = "Low"
)

// ProjectInputs holds the raw values captured by a form.
type ProjectInputs struct {
	Name            string  `json:"name" yaml:"name" toml:"name"`
	Budget          float64 `json:"budget" yaml:"budget" toml:"budget"`
	Spent           float64 `json:"spent" yaml:"spent" toml:"spent"`
	PlannedMonths   int     `json:"planned_months" yaml:"planned_months" toml:"planned_months"`
	ActualMonths    int     `json:"actual_months" yaml:"actual_months" toml:"actual_months"`
	ProgressPercent int     `json:"progress_percent" yaml:"progress_percent" toml:"progress_percent"`
	RisksRaw        string  `json:"risks" yaml:"risks" toml:"risks"`
}

// RiskEntry is one risk description with its derived severity.
type RiskEntry struct {
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

// ProjectReport holds everything derived from a ProjectInputs value.
// Inputs is kept so renderers can draw charts and titles from the report alone.
type ProjectReport struct {
	Inputs                   ProjectInputs `json:"inputs" yaml:"inputs"`
	BudgetVariance           float64       `json:"budget_variance" yaml:"budget_variance"`
	PlannedProgressPercent   float64       `json:"planned_progress_percent" yaml:"planned_progress_percent"`
	SchedulePerformanceIndex float64       `json:"schedule_performance_index" yaml:"schedule_performance_index"`
	CostPerformanceIndex     float64       `json:"cost_performance_index" yaml:"cost_performance_index"`
	Risks                    []RiskEntry   `json:"risks" yaml:"risks"`
}

// HighRiskCount returns the number of risks tagged High.
func (r ProjectReport) HighRiskCount() int {
	n := 0
	for _, e := range r.Risks {
		if e.Severity == SeverityHigh {
			n++
		}
	}
	return n
}

// DefaultInputs returns the values the dashboard opens with when no config
// overrides them.
func DefaultInputs() ProjectInputs {
	return ProjectInputs{
		Name:            "132kV Grid Station Expansion",
		Budget:          1_000_000,
		Spent:           400_000,
		PlannedMonths:   12,
		ActualMonths:    8,
		ProgressPercent: 50,
		RisksRaw:        "Delay in material delivery, Permit issue",
	}
}
