package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTable_Layout(t *testing.T) {
	out := RenderTable(Table{
		Headers:   []string{"Risk", "Severity"},
		Rows:      [][]string{{"Delay in material delivery", "High"}, {"Minor fix", "Low"}},
		LeftAlign: true,
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// top border, header, separator, two rows, bottom border
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, line := range lines {
		if lipgloss.Width(line) != w {
			t.Errorf("line %d width %d, want %d", i, lipgloss.Width(line), w)
		}
	}
	if !strings.Contains(out, "Delay in material delivery") {
		t.Error("row text missing from table")
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("empty table rendered %q", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	full := RenderHorizontalBar(10, 10, 8, ColorGreen)
	if strings.Count(full, "█") != 8 {
		t.Errorf("full bar has %d blocks, want 8", strings.Count(full, "█"))
	}
	half := RenderHorizontalBar(5, 10, 8, ColorGreen)
	if strings.Count(half, "█") != 4 {
		t.Errorf("half bar has %d blocks, want 4", strings.Count(half, "█"))
	}
	if RenderHorizontalBar(5, 0, 8, ColorGreen) != "" {
		t.Error("zero max should render nothing")
	}
}

func TestRenderBarChart(t *testing.T) {
	out := RenderBarChart("Budget Overview", "Amount ($)", []Bar{
		{Label: "Budget", Value: 1_000_000, Color: ColorGreen},
		{Label: "Spent", Value: 400_000, Color: ColorRed},
	}, FormatCurrency, 20)

	for _, want := range []string{"Budget Overview", "Amount ($)", "$1,000,000", "$400,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
}
