package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvassign/internal/api"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve exposes POST /v1/solve and GET /healthz. The server stops
gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return c.serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address (default from config)")

	return cmd
}

// serve runs the API on ln until ctx is cancelled.
func (c *CLI) serve(ctx context.Context, ln net.Listener) error {
	logger := loggerFromContext(ctx)
	opts, err := c.Config.SolverOptions()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           api.NewRouter(logger, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.Info("listening", "addr", ln.Addr().String(), "algorithm", opts.Algo)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
