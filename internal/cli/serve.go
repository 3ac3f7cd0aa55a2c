package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/internal/server"
)

// serveCommand creates the serve command for running the HTTP render
// API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, backend string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render server",
		Long: `Serve starts an HTTP API that renders schedules posted to /render,
with health probes on /healthz and Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}
			if backend == "" {
				backend = c.config.Cache.Backend
			}
			return c.runServe(cmd.Context(), addr, backend)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&backend, "cache", "", "cache backend: file, redis, none (default from config)")

	return cmd
}

// runServe starts the server and blocks until the context is cancelled
// or the listener fails, then drains in-flight requests.
func (c *CLI) runServe(ctx context.Context, addr, backend string) error {
	cch, err := c.newCacheBackend(ctx, backend)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:   addr,
		Cache:  cch,
		Keyer:  c.newKeyer(),
		Logger: c.Logger,
	})

	printInfo("Listening on %s", StyleLink.Render(displayURL(addr)))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// displayURL turns a listen address into something clickable.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
