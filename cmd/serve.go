package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/api"
	"github.com/sodam-labs/sodam/internal/config"
)

var (
	servePort   int
	serveNoSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if !serveNoSeed {
			if _, err := st.SeedSamples(ctx); err != nil {
				return eris.Wrap(err, "seed sample areas")
			}
		}

		handler := api.New(newService(), st, apiOptions(cfg.Server, cfg.Batch)).Routes()
		srv := newHTTPServer(cfg.Server, handler)

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zap.L().Warn("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func apiOptions(s config.ServerConfig, b config.BatchConfig) api.Options {
	return api.Options{
		MaxItems:       b.MaxItems,
		RateLimitRPS:   s.RateLimitRPS,
		RateLimitBurst: s.RateLimitBurst,
		CORSOrigins:    s.CORSOrigins,
	}
}

func newHTTPServer(s config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           handler,
		ReadTimeout:       time.Duration(s.ReadTimeoutSecs) * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Duration(s.WriteTimeoutSecs) * time.Second,
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "do not seed sample areas into an empty store")
	rootCmd.AddCommand(serveCmd)
}
