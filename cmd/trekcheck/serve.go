package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trekcheck/trekcheck/pkg/httpserver"
	"github.com/trekcheck/trekcheck/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Long: `Run the HTTP API. Server settings come from HTTP_ADDR, HTTP_READ_TIMEOUT,
HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetAsDefault(a.log)
			opts := []httpserver.Option{
				httpserver.WithLogger(a.log),
				httpserver.WithStartHook(func(log *slog.Logger, addr string) {
					log.Info("trekcheck api listening",
						slog.String("addr", addr),
						logger.Locale(a.cfg.DefaultLang),
						slog.Any("languages", a.svc.Languages()),
					)
				}),
			}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(cmd.Context(), a.svc.Handle())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
