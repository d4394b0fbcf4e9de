package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"chartd/internal/httpapi"
)

func newServeCmd(opts *Options) *cobra.Command {
	var (
		addr         string
		corsOrigins  string
		requestLog   string
		themeTimeout int64
		maxBody      int64
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the dashboard page and HTTP API",
		Example: "  chartd serve -c dashboard.yaml --addr :9090",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			m, cfg, log, err := openDashboard(ctx, opts)
			if err != nil {
				return err
			}
			defer m.Close()

			if addr == "" {
				addr = cfg.Addr
			}
			cors := cfg.CORS
			if origins := splitCSV(corsOrigins); len(origins) > 0 {
				cors.Enabled = true
				cors.AllowedOrigins = origins
			}
			httpapi.SetCORSOptions(cors.Enabled, cors.AllowedOrigins, cors.AllowedMethods, cors.AllowedHeaders)
			httpapi.SetRequestLogLevel(requestLog)
			httpapi.SetThemeTimeoutSeconds(themeTimeout)
			httpapi.SetMaxBodyBytes(maxBody)
			httpapi.SetBaseContext(ctx)

			srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(m), ReadHeaderTimeout: 10 * time.Second}
			errc := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Int("charts", len(m.List())).Msg("chartd listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			// Graceful shutdown (Ctrl+C / SIGTERM)
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(stop)
			select {
			case err, ok := <-errc:
				if ok {
					return err
				}
				return nil
			case <-stop:
			}
			cancel()
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.Error().Err(err).Msg("graceful shutdown error")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (defaults to the config's addr)")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed origins; enables CORS")
	cmd.Flags().StringVar(&requestLog, "request-log", "info", "Per-request log level: off|error|info|debug")
	cmd.Flags().Int64Var(&themeTimeout, "theme-timeout", 10, "Seconds allowed for POST /themes fetches (0 disables)")
	cmd.Flags().Int64Var(&maxBody, "max-body-bytes", 1<<20, "Maximum JSON request body size")
	return cmd
}
