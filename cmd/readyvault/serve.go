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

	"github.com/rgehrsitz/readyvault/internal/server"
)

const cacheTTL = 24 * time.Hour

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = a.settings.Port
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(server.Config{
				Port:    port,
				Log:     a.log,
				Store:   st,
				Engine:  a.newEngine(),
				Cache:   a.analysisCache(cmd.Context()),
				DevMode: a.settings.DevMode,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default READYVAULT_PORT or 8080)")
	return cmd
}

// analysisCache uses Redis when configured and reachable, otherwise memory
func (a *app) analysisCache(ctx context.Context) server.AnalysisCache {
	if a.settings.RedisAddr == "" {
		return server.NewMemoryCache()
	}

	rc := server.NewRedisCache(a.settings.RedisAddr, cacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		a.log.Warn().Err(err).Str("addr", a.settings.RedisAddr).Msg("Redis unavailable, using in-memory analysis cache")
		rc.Close()
		return server.NewMemoryCache()
	}
	a.log.Info().Str("addr", a.settings.RedisAddr).Msg("Using Redis analysis cache")
	return rc
}
