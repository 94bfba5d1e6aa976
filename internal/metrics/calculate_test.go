package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/pdash/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestCalculate_DefaultScenario(t *testing.T) {
	in := model.ProjectInputs{
		Name:            "Grid",
		Budget:          1_000_000,
		Spent:           400_000,
		PlannedMonths:   12,
		ActualMonths:    8,
		ProgressPercent: 50,
	}

	r, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BudgetVariance != 600_000 {
		t.Errorf("BudgetVariance = %.2f, want 600000", r.BudgetVariance)
	}
	if !approx(r.PlannedProgressPercent, 66.67) {
		t.Errorf("PlannedProgressPercent = %.4f, want ~66.67", r.PlannedProgressPercent)
	}
	if r.SchedulePerformanceIndex != 0.75 {
		t.Errorf("SPI = %.4f, want 0.75", r.SchedulePerformanceIndex)
	}
	if r.CostPerformanceIndex != 1.25 {
		t.Errorf("CPI = %.4f, want 1.25", r.CostPerformanceIndex)
	}
	if r.Inputs != in {
		t.Errorf("report inputs = %+v, want %+v", r.Inputs, in)
	}
}

func TestCalculate_RisksInReport(t *testing.T) {
	r, err := Calculate(model.ProjectInputs{
		Budget:        10,
		PlannedMonths: 1,
		RisksRaw:      "Weather delay, Minor cosmetic fix",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Risks) != 2 {
		t.Fatalf("len(Risks) = %d, want 2", len(r.Risks))
	}
	if r.Risks[0].Severity != model.SeverityHigh || r.Risks[1].Severity != model.SeverityLow {
		t.Errorf("severities = [%s %s], want [High Low]", r.Risks[0].Severity, r.Risks[1].Severity)
	}
	if r.HighRiskCount() != 1 {
		t.Errorf("HighRiskCount = %d, want 1", r.HighRiskCount())
	}
}

func TestCalculate_EmptyRisks(t *testing.T) {
	r, err := Calculate(model.ProjectInputs{Budget: 1, PlannedMonths: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Risks == nil || len(r.Risks) != 0 {
		t.Fatalf("Risks = %#v, want empty non-nil slice", r.Risks)
	}
}

func TestCalculate_ZeroBudgetWithSpend(t *testing.T) {
	_, err := Calculate(model.ProjectInputs{Budget: 0, Spent: 100, PlannedMonths: 12, ProgressPercent: 10})
	if !errors.Is(err, ErrZeroBudget) {
		t.Fatalf("err = %v, want ErrZeroBudget", err)
	}
}

func TestCalculate_NoSpendIgnoresBudget(t *testing.T) {
	for _, budget := range []float64{0, 1, 1_000_000} {
		r, err := Calculate(model.ProjectInputs{Budget: budget, Spent: 0, PlannedMonths: 12, ProgressPercent: 40})
		if err != nil {
			t.Fatalf("budget=%.0f: unexpected error: %v", budget, err)
		}
		if r.CostPerformanceIndex != 1.0 {
			t.Errorf("budget=%.0f: CPI = %.2f, want 1.0", budget, r.CostPerformanceIndex)
		}
	}
}

func TestBudgetVariance(t *testing.T) {
	tests := []struct {
		budget, spent, want float64
	}{
		{1000, 400, 600},
		{1000, 1000, 0},
		{1000, 1200, -200},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := BudgetVariance(tt.budget, tt.spent)
		if got != tt.want {
			t.Errorf("BudgetVariance(%.0f, %.0f) = %.0f, want %.0f", tt.budget, tt.spent, got, tt.want)
		}
		if (got < 0) != (tt.spent > tt.budget) {
			t.Errorf("BudgetVariance(%.0f, %.0f) sign wrong", tt.budget, tt.spent)
		}
	}
}

func TestPlannedProgress_ZeroPlanned(t *testing.T) {
	if got := PlannedProgress(8, 0); got != 0 {
		t.Fatalf("PlannedProgress(8, 0) = %.2f, want 0", got)
	}
	if got := PlannedProgress(3, 12); got != 25 {
		t.Fatalf("PlannedProgress(3, 12) = %.2f, want 25", got)
	}
}

func TestSchedulePerformanceIndex_ZeroPlanned(t *testing.T) {
	if got := SchedulePerformanceIndex(80, 0); got != 1.0 {
		t.Fatalf("SPI with zero planned = %.2f, want 1.0", got)
	}
	r, err := Calculate(model.ProjectInputs{Budget: 1, PlannedMonths: 0, ActualMonths: 5, ProgressPercent: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.PlannedProgressPercent != 0 || r.SchedulePerformanceIndex != 1.0 {
		t.Fatalf("planned=%.2f spi=%.2f, want 0 and 1.0", r.PlannedProgressPercent, r.SchedulePerformanceIndex)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.754, 0.75},
		{0.756, 0.76},
		{1.0 / 3, 0.33},
		{2.0 / 3, 0.67},
		{-0.125, -0.13},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalculate_HalfCentRoundsAwayFromZero(t *testing.T) {
	// 10 / 80 = 0.125 exactly.
	r, err := Calculate(model.ProjectInputs{
		Budget:          1000,
		Spent:           100,
		PlannedMonths:   10,
		ActualMonths:    8,
		ProgressPercent: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.SchedulePerformanceIndex != 0.13 {
		t.Errorf("SPI = %v, want 0.13", r.SchedulePerformanceIndex)
	}
	if got := SchedulePerformanceIndex(10, PlannedProgress(8, 10)); got != 0.13 {
		t.Errorf("SchedulePerformanceIndex(10, 80) = %v, want 0.13", got)
	}
}
