package commands

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/internal/httpapi"
)

// NewServeCommand builds "vvsql serve", which runs the HTTP API until
// interrupted.
func NewServeCommand() *cobra.Command {
	var addr, corsOrigin string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the vvsql HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromContext(cmd.Context())

			if addr == "" {
				addr = cc.Cfg.HTTPAddr
			}
			if corsOrigin == "" {
				corsOrigin = cc.Cfg.CORSOrigin
			}

			server := httpapi.NewServer(httpapi.Config{
				Addr:       addr,
				CORSOrigin: corsOrigin,
				Registry:   cc.Registry,
				Reader:     cc.Reader(cmd.Flag("reader").Value.String()),
				Version:    versionFromContext(cmd),
				Logger:     slog.Default(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to bind (default: config http_addr)")
	cmd.Flags().StringVar(&corsOrigin, "cors-origin", "", "allowed CORS origin (default: config cors_origin)")

	return cmd
}

func versionFromContext(cmd *cobra.Command) string {
	if v := cmd.Root().Version; v != "" {
		return v
	}
	return "0.1.0"
}
