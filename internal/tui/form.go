package tui

import (
	"strconv"

	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"

	"github.com/charmbracelet/huh"
)

// formValues holds the raw text bound to the huh input fields.
// It lives on the heap so the form keeps writing to the same values
// while the App is copied through Update.
type formValues struct {
	name     string
	budget   string
	spent    string
	planned  string
	actual   string
	progress string
	risks    string
}

func newFormValues(in model.ProjectInputs) *formValues {
	return &formValues{
		name:     in.Name,
		budget:   strconv.FormatFloat(in.Budget, 'f', -1, 64),
		spent:    strconv.FormatFloat(in.Spent, 'f', -1, 64),
		planned:  strconv.Itoa(in.PlannedMonths),
		actual:   strconv.Itoa(in.ActualMonths),
		progress: strconv.Itoa(in.ProgressPercent),
		risks:    in.RisksRaw,
	}
}

func (v *formValues) asMap() map[string]string {
	return map[string]string{
		metrics.FieldName:     v.name,
		metrics.FieldBudget:   v.budget,
		metrics.FieldSpent:    v.spent,
		metrics.FieldPlanned:  v.planned,
		metrics.FieldActual:   v.actual,
		metrics.FieldProgress: v.progress,
		metrics.FieldRisks:    v.risks,
	}
}

// inputs parses the form values on top of base.
func (v *formValues) inputs(base model.ProjectInputs) (model.ProjectInputs, error) {
	return metrics.ParseInputs(v.asMap(), base)
}

// newInputForm builds the project input form bound to vals.
func newInputForm(vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&vals.name),
			huh.NewInput().
				Title("Total Budget").
				Description("Dollars, e.g. 1,000,000").
				Validate(metrics.CheckAmount).
				Value(&vals.budget),
			huh.NewInput().
				Title("Spent Amount").
				Validate(metrics.CheckAmount).
				Value(&vals.spent),
			huh.NewInput().
				Title("Planned Duration (months)").
				Validate(metrics.CheckWholeNumber(1, metrics.NoUpperBound)).
				Value(&vals.planned),
			huh.NewInput().
				Title("Actual Duration (months so far)").
				Validate(metrics.CheckWholeNumber(0, metrics.NoUpperBound)).
				Value(&vals.actual),
			huh.NewInput().
				Title("Progress (%)").
				Description("0 to 100").
				Validate(metrics.CheckWholeNumber(0, 100)).
				Value(&vals.progress),
		).Title("Project Inputs"),
		huh.NewGroup(
			huh.NewText().
				Title("Risks (comma separated)").
				Description("Risks mentioning delay, shortage, permit or issue are rated High.").
				Lines(5).
				Value(&vals.risks),
		).Title("Risk Register"),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(true)
}
