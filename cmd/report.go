package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/pdash/internal/cli"
	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the project report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text, json, yaml")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	in, err := projectInputs(cmd.Flags(), loadConfig())
	if err != nil {
		return err
	}

	v, err := report.Generate(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(flagFormat) {
	case "json":
		return report.WriteJSON(out, v)
	case "yaml", "yml":
		return report.WriteYAML(out, v)
	case "text", "":
		renderTextReport(out, v)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", flagFormat)
	}
}

func renderTextReport(w io.Writer, v report.View) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(strings.ToUpper(v.Title)))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(v.Summary))
	for _, s := range v.Summary {
		rows = append(rows, []string{s.Label, s.Value})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderBarChart(v.BudgetChart.Title, v.BudgetChart.YLabel,
		chartBars(v.BudgetChart), cli.FormatCurrency, 40))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderBarChart(v.ScheduleChart.Title, v.ScheduleChart.YLabel,
		chartBars(v.ScheduleChart), cli.FormatPercent, 40))
	fmt.Fprintln(w)

	if len(v.Risks) == 0 {
		fmt.Fprintln(w, "  No risks recorded.")
		return
	}

	riskRows := make([][]string, 0, len(v.Risks))
	for _, r := range v.Risks {
		sev := cli.SeverityStyle(r.Severity == model.SeverityHigh).Render(string(r.Severity))
		riskRows = append(riskRows, []string{r.Description, sev})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Risk Register (%d high)", v.Report.HighRiskCount()),
		Headers:   []string{"Risk Description", "Severity"},
		Rows:      riskRows,
		LeftAlign: true,
	}))
}

var chartColors = map[string]lipgloss.Color{
	"green":  cli.ColorGreen,
	"red":    cli.ColorRed,
	"blue":   cli.ColorBlue,
	"orange": cli.ColorOrange,
}

func chartBars(s report.ChartSeries) []cli.Bar {
	bars := make([]cli.Bar, len(s.Points))
	for i, p := range s.Points {
		bars[i] = cli.Bar{Label: p.Label, Value: p.Value, Color: chartColors[p.Color]}
	}
	return bars
}
