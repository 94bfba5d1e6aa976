package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/pdash/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	if len(widths) != 3 {
		t.Fatalf("len = %d, want 3", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 {
		t.Errorf("widths %v sum to %d, want 100", widths, sum)
	}
	if widths[0] != 34 || widths[2] != 33 {
		t.Errorf("remainder not absorbed by first items: %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(_, 0) should be nil")
	}
}

func TestMetricCardRow_FillsWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Budget Variance", Value: "$600,000", Note: "under budget"},
		{Label: "SPI (Schedule Perf.)", Value: "0.75", Color: theme.Active.Red},
		{Label: "CPI (Cost Perf.)", Value: "1.25"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
	if !strings.Contains(row, "$600,000") {
		t.Error("metric value missing")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Budget Overview", "Content", 22)
	tallCard := ContentCard("Risk Register", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	w := lipgloss.Width(lines[0])
	for i, line := range lines {
		if lipgloss.Width(line) != w {
			t.Errorf("line %d width = %d, want %d", i, lipgloss.Width(line), w)
		}
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("padding line %d has no ANSI background", i)
		}
	}
}

func TestCardRowSkipsEmpty(t *testing.T) {
	card := ContentCard("Only", "x", 20)
	if got := CardRow([]string{"", card, ""}); got != card {
		t.Fatal("single non-empty card should be returned unchanged")
	}
	if CardRow(nil) != "" {
		t.Fatal("no cards should render nothing")
	}
}
