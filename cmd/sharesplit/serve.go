package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sharesplit/internal/config"
	"github.com/rgehrsitz/sharesplit/internal/server"
	"github.com/rgehrsitz/sharesplit/pkg/logger"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Long: `Start the HTTP API. Settings come from the environment (PORT, LOG_LEVEL,
LOG_PRETTY, DEV_MODE, CORS_ALLOWED_ORIGINS, REQUEST_TIMEOUT_SECONDS,
MAX_BODY_BYTES), optionally loaded from a .env file; flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
			logger.SetGlobalLogger(log)

			srv := server.New(server.Config{Server: cfg, Log: log})

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
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
				if err != nil {
					log.Error().Err(err).Msg("Failed to start server")
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
				return err
			}
			log.Info().Msg("Server stopped")
			return nil
		},
	}
	cmd.Flags().IntP("port", "p", 5000, "Port to listen on (overrides PORT)")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	return cmd
}

// serveConfig loads the environment settings, applies the flag overrides and
// validates the result once
func serveConfig(cmd *cobra.Command) (*config.ServerConfig, error) {
	cfg := config.LoadServerConfig()
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
