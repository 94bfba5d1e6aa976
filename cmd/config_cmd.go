package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/pdash/internal/cli"
	"github.com/theirongolddev/pdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	d := cfg.Defaults
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Defaults", [][2]string{
			{"Project name", d.Name},
			{"Budget", cli.FormatCurrency(d.Budget)},
			{"Spent", cli.FormatCurrency(d.Spent)},
			{"Planned months", strconv.Itoa(d.PlannedMonths)},
			{"Actual months", strconv.Itoa(d.ActualMonths)},
			{"Progress", strconv.Itoa(d.ProgressPercent) + "%"},
			{"Risks", d.RisksRaw},
		}},
		{"Appearance", [][2]string{{"Theme", cfg.Appearance.Theme}}},
		{"Export", [][2]string{{"Directory", config.ExportDir(cfg)}}},
		{"Server", [][2]string{{"Address", cfg.Server.Addr}}},
	}

	for _, sec := range sections {
		fmt.Fprintf(out, "  [%s]\n", sec.title)
		for _, row := range sec.rows {
			fmt.Fprintln(out, "  "+cli.RenderKeyValue(row[0], row[1], 15))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "  Run `pdash setup` to reconfigure.")
	return nil
}
