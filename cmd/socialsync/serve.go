package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			module, err := moduleBuilder(*envFiles)
			if err != nil {
				return err
			}
			defer module.Close()

			if err := module.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			handler, err := module.Handler()
			if err != nil {
				return fmt.Errorf("http handler: %w", err)
			}

			container := module.Container()
			server := &http.Server{
				Addr:              container.Config.Server.Addr,
				Handler:           handler,
				ReadHeaderTimeout: container.Config.Server.ReadHeaderTimeout,
			}

			logger := module.Logger()
			errCh := make(chan error, 1)
			go func() {
				logger.Info("server.listening", "addr", server.Addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("server.shutting_down", "timeout", container.ShutdownTimeout().String())
			shutdownCtx, cancel := context.WithTimeout(context.Background(), container.ShutdownTimeout())
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("server.stopped")
			return nil
		},
	}
}
