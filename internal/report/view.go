// Package report turns a computed project report into the pieces renderers
// consume: summary lines, chart series, the risk register and the PDF.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/pdash/internal/cli"
	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"

	"gopkg.in/yaml.v3"
)

// Summary labels, shared by every front end and the PDF.
const (
	LabelBudgetVariance = "Budget Variance"
	LabelSPI            = "Schedule Performance Index"
	LabelCPI            = "Cost Performance Index"
)

// SummaryLine is one labeled KPI.
type SummaryLine struct {
	Label string  `json:"label" yaml:"label"`
	Value string  `json:"value" yaml:"value"`
	Raw   float64 `json:"raw" yaml:"raw"`
}

func (s SummaryLine) String() string {
	return s.Label + ": " + s.Value
}

// ChartPoint is one category/value pair. Color names the bar color role
// ("green", "red", "blue", "orange"); renderers map it to their palette.
type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
}

// ChartSeries is the data for one bar chart.
type ChartSeries struct {
	Title  string       `json:"title" yaml:"title"`
	YLabel string       `json:"y_label" yaml:"y_label"`
	Points []ChartPoint `json:"points" yaml:"points"`
}

// Max returns the largest value in the series, or 0 when empty.
func (c ChartSeries) Max() float64 {
	peak := 0.0
	for _, p := range c.Points {
		if p.Value > peak {
			peak = p.Value
		}
	}
	return peak
}

// View is everything a renderer needs to show one report.
type View struct {
	Title         string              `json:"title" yaml:"title"`
	Summary       []SummaryLine       `json:"summary" yaml:"summary"`
	BudgetChart   ChartSeries         `json:"budget_chart" yaml:"budget_chart"`
	ScheduleChart ChartSeries         `json:"schedule_chart" yaml:"schedule_chart"`
	Risks         []model.RiskEntry   `json:"risks" yaml:"risks"`
	Report        model.ProjectReport `json:"report" yaml:"report"`
}

// Build lays out r for rendering.
func Build(r model.ProjectReport) View {
	in := r.Inputs

	risks := r.Risks
	if risks == nil {
		risks = []model.RiskEntry{}
	}

	return View{
		Title: "Project Report: " + in.Name,
		Summary: []SummaryLine{
			{Label: LabelBudgetVariance, Value: cli.FormatCurrency(r.BudgetVariance), Raw: r.BudgetVariance},
			{Label: LabelSPI, Value: cli.FormatIndex(r.SchedulePerformanceIndex), Raw: r.SchedulePerformanceIndex},
			{Label: LabelCPI, Value: cli.FormatIndex(r.CostPerformanceIndex), Raw: r.CostPerformanceIndex},
		},
		BudgetChart: ChartSeries{
			Title:  "Budget Overview",
			YLabel: "Amount ($)",
			Points: []ChartPoint{
				{Label: "Budget", Value: in.Budget, Color: "green"},
				{Label: "Spent", Value: in.Spent, Color: "red"},
			},
		},
		ScheduleChart: ChartSeries{
			Title:  "Schedule Progress",
			YLabel: "Progress (%)",
			Points: []ChartPoint{
				{Label: "Planned Progress", Value: r.PlannedProgressPercent, Color: "blue"},
				{Label: "Actual Progress", Value: float64(in.ProgressPercent), Color: "orange"},
			},
		},
		Risks:  risks,
		Report: r,
	}
}

// Generate validates in, calculates the report and lays it out.
func Generate(in model.ProjectInputs) (View, error) {
	if err := metrics.Validate(in); err != nil {
		return View{}, err
	}
	r, err := metrics.Calculate(in)
	if err != nil {
		return View{}, err
	}
	return Build(r), nil
}

// RiskLine formats a risk the way the exported document lists it.
func RiskLine(e model.RiskEntry) string {
	return fmt.Sprintf("- %s (%s)", e.Description, e.Severity)
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

// WriteYAML encodes v as YAML.
func WriteYAML(w io.Writer, v View) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return nil
}
