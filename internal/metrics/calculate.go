// Package metrics computes budget and schedule performance figures for a project.
package metrics

import (
	"errors"
	"math"

	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/risk"
)

// ErrZeroBudget is returned when money has been spent against a zero budget,
// which leaves the cost performance index undefined.
var ErrZeroBudget = errors.New("cost performance index undefined: spent > 0 with zero budget")

// Calculate derives a ProjectReport from in. The only failure is ErrZeroBudget.
func Calculate(in model.ProjectInputs) (model.ProjectReport, error) {
	cpi, err := CostPerformanceIndex(in.ProgressPercent, in.Spent, in.Budget)
	if err != nil {
		return model.ProjectReport{}, err
	}

	planned := PlannedProgress(in.ActualMonths, in.PlannedMonths)

	return model.ProjectReport{
		Inputs:                   in,
		BudgetVariance:           BudgetVariance(in.Budget, in.Spent),
		PlannedProgressPercent:   planned,
		SchedulePerformanceIndex: SchedulePerformanceIndex(in.ProgressPercent, planned),
		CostPerformanceIndex:     cpi,
		Risks:                    risk.Parse(in.RisksRaw),
	}, nil
}

// BudgetVariance returns budget - spent. Positive means under budget.
func BudgetVariance(budget, spent float64) float64 {
	return budget - spent
}

// PlannedProgress returns the share of the planned duration already elapsed,
// in percent. Zero planned months yields 0.
func PlannedProgress(actualMonths, plannedMonths int) float64 {
	if plannedMonths <= 0 {
		return 0
	}
	return float64(actualMonths) / float64(plannedMonths) * 100
}

// SchedulePerformanceIndex returns progress / planned rounded to two decimals,
// or 1.0 when nothing was planned yet.
func SchedulePerformanceIndex(progress int, plannedPercent float64) float64 {
	if plannedPercent <= 0 {
		return 1.0
	}
	return Round2(float64(progress) / plannedPercent)
}

// CostPerformanceIndex returns progress / (spent/budget * 100) rounded to two
// decimals, or 1.0 when nothing has been spent.
func CostPerformanceIndex(progress int, spent, budget float64) (float64, error) {
	if spent <= 0 {
		return 1.0, nil
	}
	if budget == 0 {
		return 0, ErrZeroBudget
	}
	return Round2(float64(progress) / (spent / budget * 100)), nil
}

// Round2 rounds v to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
