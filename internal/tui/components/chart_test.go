package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/pdash/internal/tui/theme"
)

func TestBarChart_LabelsAndHeight(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	out := BarChart(
		[]float64{1_000_000, 400_000},
		[]string{"Budget", "Spent"},
		[]lipgloss.Color{th.Green, th.Red},
		40, 8,
	)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "Budget") || !strings.Contains(last, "Spent") {
		t.Errorf("x-axis labels missing: %q", last)
	}
	if !strings.Contains(out, "1.2M") {
		t.Errorf("y-axis ceiling label missing:\n%s", out)
	}
	if len(lines) < 8 {
		t.Errorf("chart has %d lines, want at least 8", len(lines))
	}
}

func TestBarChart_WideLabelsFit(t *testing.T) {
	out := BarChart(
		[]float64{66.67, 50},
		[]string{"Planned Progress", "Actual Progress"},
		nil, 50, 8,
	)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "Planned Progress") || !strings.Contains(last, "Actual Progress") {
		t.Errorf("labels truncated or dropped: %q", last)
	}
}

func TestBarChart_TinyFallsBackToRows(t *testing.T) {
	out := BarChart([]float64{1_000_000, 400_000}, []string{"Budget", "Spent"}, nil, 10, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("tiny chart should list one row per bar, got %q", out)
	}
	if !strings.Contains(lines[0], "Budget 1M") || !strings.Contains(lines[1], "Spent 400k") {
		t.Errorf("unexpected rows: %q", lines)
	}
	if BarChart(nil, nil, nil, 40, 8) != "" {
		t.Error("empty series should render nothing")
	}
}

func TestBarChart_TallerBarIsTaller(t *testing.T) {
	out := BarChart([]float64{100, 50}, []string{"A", "B"}, nil, 40, 10)
	lines := strings.Split(out, "\n")
	// The top plot row only holds the larger bar.
	top := lines[0]
	if strings.Count(top, "█") == 0 {
		t.Fatalf("top row has no bar: %q", top)
	}
	mid := lines[len(lines)-3]
	if strings.Count(mid, "█") <= strings.Count(top, "█") {
		t.Errorf("lowest row should hold both bars: top %q, bottom %q", top, mid)
	}
}

func TestAxisLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_200_000, "1.2M"},
		{1_000_000, "1M"},
		{400_000, "400k"},
		{2_500_000_000, "2.5B"},
		{80, "80"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		if got := axisLabel(tt.in); got != tt.want {
			t.Errorf("axisLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{1_000_000, 200_000},
		{100, 20},
		{66.67, 10},
		{0, 1},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}
