package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"letterrush/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the answer validation HTTP service",
	Long: `Serve starts the HTTP API:

  POST /api/validate  validate a batch of answers
  GET  /healthz       liveness probe
  GET  /metrics       prometheus metrics

Example:
  letterrush serve
  letterrush serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := newLogger(cfg.Log)
	defer func() { _ = log.Sync() }()

	validator := buildValidator(cfg, log)
	srv := server.New(validator, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, cfg.Server)
}
