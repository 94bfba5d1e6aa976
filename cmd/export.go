package cmd

import (
	"fmt"

	"github.com/theirongolddev/pdash/internal/report"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the project report as a PDF",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file or directory (default: export dir from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	in, err := projectInputs(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	v, err := report.Generate(in)
	if err != nil {
		return err
	}

	dest := flagOutput
	if dest == "" && cfg.Export.Dir != "" {
		dest = cfg.Export.Dir
	}

	path, err := report.ExportPDF(dest, v)
	if err != nil {
		return err
	}

	logger.Debug().Str("path", path).Int("risks", len(v.Risks)).Msg("exported report")
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved %s\n", path)
	return nil
}
