package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/pdash/internal/config"
	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Save default project inputs and appearance",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg := loadConfig()
	d := cfg.Defaults

	var (
		name      = d.Name
		budget    = strconv.FormatFloat(d.Budget, 'f', -1, 64)
		spent     = strconv.FormatFloat(d.Spent, 'f', -1, 64)
		planned   = strconv.Itoa(d.PlannedMonths)
		actual    = strconv.Itoa(d.ActualMonths)
		progress  = strconv.Itoa(d.ProgressPercent)
		risks     = d.RisksRaw
		themeName = cfg.Appearance.Theme
		exportDir = cfg.Export.Dir
	)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pdash").
				Description("These values prefill the dashboard form.\nFlags still override them per run."),
			huh.NewInput().Title("Project Name").Value(&name),
			huh.NewInput().Title("Total Budget ($)").Value(&budget).Validate(metrics.CheckAmount),
			huh.NewInput().Title("Spent Amount ($)").Value(&spent).Validate(metrics.CheckAmount),
			huh.NewInput().Title("Planned Duration (months)").Value(&planned).Validate(metrics.CheckWholeNumber(1, metrics.NoUpperBound)),
			huh.NewInput().Title("Actual Duration (months)").Value(&actual).Validate(metrics.CheckWholeNumber(0, metrics.NoUpperBound)),
			huh.NewInput().Title("Progress (%)").Value(&progress).Validate(metrics.CheckWholeNumber(0, 100)),
			huh.NewText().Title("Risks (comma separated)").Value(&risks).Lines(3),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewInput().
				Title("Export directory").
				Description("Where the dashboard writes project_report.pdf. Empty means the working directory.").
				Value(&exportDir),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup canceled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	in, err := metrics.ParseInputs(map[string]string{
		metrics.FieldName:     name,
		metrics.FieldBudget:   budget,
		metrics.FieldSpent:    spent,
		metrics.FieldPlanned:  planned,
		metrics.FieldActual:   actual,
		metrics.FieldProgress: progress,
		metrics.FieldRisks:    risks,
	}, cfg.Defaults)
	if err != nil {
		return err
	}

	cfg.Defaults = in
	cfg.Appearance.Theme = themeName
	cfg.Export.Dir = strings.TrimSpace(exportDir)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `pdash setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}
