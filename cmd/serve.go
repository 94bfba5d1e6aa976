package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/pdash/internal/server"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and report API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default: server.addr from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	in, err := projectInputs(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	addr := flagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	srv := server.New(logger, server.Config{
		Addr:     addr,
		Defaults: in,
	})
	return srv.Run(ctx)
}
