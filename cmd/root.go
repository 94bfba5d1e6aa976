// Package cmd implements the pdash CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/pdash/internal/config"
	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagName     string
	flagBudget   float64
	flagSpent    float64
	flagPlanned  int
	flagActual   int
	flagProgress int
	flagRisks    string
	flagVerbose  bool
)

// inputFlags maps each input flag to the form field it sets.
var inputFlags = map[string]string{
	"name":     metrics.FieldName,
	"budget":   metrics.FieldBudget,
	"spent":    metrics.FieldSpent,
	"planned":  metrics.FieldPlanned,
	"actual":   metrics.FieldActual,
	"progress": metrics.FieldProgress,
	"risks":    metrics.FieldRisks,
}

var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "pdash",
	Short: "Project Risk & Performance Dashboard",
	Long:  "Monitor project budget, schedule and risks: performance indices, charts, a risk register and a PDF report.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = newLogger(flagVerbose)
	},
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	defaults := model.DefaultInputs()

	rootCmd.PersistentFlags().StringVar(&flagName, "name", defaults.Name, "Project name")
	rootCmd.PersistentFlags().Float64Var(&flagBudget, "budget", defaults.Budget, "Total budget ($)")
	rootCmd.PersistentFlags().Float64Var(&flagSpent, "spent", defaults.Spent, "Spent amount ($)")
	rootCmd.PersistentFlags().IntVar(&flagPlanned, "planned", defaults.PlannedMonths, "Planned duration (months)")
	rootCmd.PersistentFlags().IntVar(&flagActual, "actual", defaults.ActualMonths, "Actual duration (months)")
	rootCmd.PersistentFlags().IntVar(&flagProgress, "progress", defaults.ProgressPercent, "Progress (%)")
	rootCmd.PersistentFlags().StringVar(&flagRisks, "risks", defaults.RisksRaw, "Risks (comma separated)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// newLogger returns the console logger used by every command.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// loadConfig loads the config file, falling back to defaults when it is
// missing or unreadable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Str("path", config.Path()).Msg("using default config")
	}
	return cfg
}

// projectInputs returns the config defaults overridden by any input flags
// set on the command line.
func projectInputs(flags *pflag.FlagSet, cfg config.Config) (model.ProjectInputs, error) {
	values := make(map[string]string)
	flags.Visit(func(f *pflag.Flag) {
		if field, ok := inputFlags[f.Name]; ok {
			values[field] = f.Value.String()
		}
	})

	in, err := metrics.ParseInputs(values, cfg.Defaults)
	if err != nil {
		return model.ProjectInputs{}, err
	}
	logger.Debug().Interface("inputs", in).Msg("resolved inputs")
	return in, nil
}
