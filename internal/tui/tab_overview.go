package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pdash/internal/cli"
	"github.com/theirongolddev/pdash/internal/report"
	"github.com/theirongolddev/pdash/internal/tui/components"
	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.view.Report
	in := r.Inputs
	var b strings.Builder

	// Row 1: KPI cards
	varianceNote := "under budget"
	varianceColor := t.Green
	if r.BudgetVariance < 0 {
		varianceNote = "over budget"
		varianceColor = t.Red
	}

	cards := []components.Metric{
		{
			Label: report.LabelBudgetVariance,
			Value: cli.FormatCurrency(r.BudgetVariance),
			Note:  varianceNote,
			Color: varianceColor,
		},
		{
			Label: "SPI",
			Value: cli.FormatIndex(r.SchedulePerformanceIndex),
			Note:  cli.IndexHealth(r.SchedulePerformanceIndex),
			Color: theme.IndexColor(r.SchedulePerformanceIndex),
		},
		{
			Label: "CPI",
			Value: cli.FormatIndex(r.CostPerformanceIndex),
			Note:  cli.IndexHealth(r.CostPerformanceIndex),
			Color: theme.IndexColor(r.CostPerformanceIndex),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Budget + schedule charts, side by side unless compact
	chartH := 10
	if a.isCompactLayout() {
		chartH = 8
	}
	if a.isCompactLayout() {
		b.WriteString(seriesCard(a.view.BudgetChart, cw, chartH))
		b.WriteString("\n")
		b.WriteString(seriesCard(a.view.ScheduleChart, cw, chartH))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			seriesCard(a.view.BudgetChart, halves[0], chartH),
			seriesCard(a.view.ScheduleChart, halves[1], chartH),
		}))
	}
	b.WriteString("\n")

	// Row 3: Utilization bars
	innerW := components.CardInnerWidth(cw)
	labelW := 16
	barW := innerW - labelW - 30
	if barW < 10 {
		barW = 10
	}

	budgetPct := 0.0
	if in.Budget > 0 {
		budgetPct = in.Spent / in.Budget
	}
	var body strings.Builder
	body.WriteString(components.LabeledBar("Budget used", budgetPct,
		fmt.Sprintf("%s of %s", cli.FormatCurrency(in.Spent), cli.FormatCurrency(in.Budget)),
		labelW, barW))
	body.WriteString("\n")
	body.WriteString(components.LabeledBar("Schedule elapsed", r.PlannedProgressPercent/100,
		fmt.Sprintf("%d of %d months", in.ActualMonths, in.PlannedMonths),
		labelW, barW))
	body.WriteString("\n")
	body.WriteString(components.LabeledBar("Work complete", float64(in.ProgressPercent)/100,
		fmt.Sprintf("%d high-severity risks", r.HighRiskCount()),
		labelW, barW))

	b.WriteString(components.ContentCard("Progress", body.String(), cw))

	return b.String()
}

// seriesCard renders one chart series as a bordered bar chart card.
func seriesCard(s report.ChartSeries, outerW, chartH int) string {
	values := make([]float64, len(s.Points))
	labels := make([]string, len(s.Points))
	colors := make([]lipgloss.Color, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
		labels[i] = p.Label
		colors[i] = theme.ChartColor(p.Color)
	}

	innerW := components.CardInnerWidth(outerW)
	title := fmt.Sprintf("%s · %s", s.Title, s.YLabel)
	return components.ContentCard(title,
		components.BarChart(values, labels, colors, innerW, chartH), outerW)
}
