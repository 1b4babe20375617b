package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"colorant-og/app"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.Initialize(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("initializing application: %w", err)
		}
		defer application.Close()

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           application.Handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Server shutdown", zap.Error(err))
			}
		}()

		logger.Info("🎉 Server starting",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.AppEnv),
			zap.String("appBaseURL", cfg.AppBaseURL))
		logger.Info("Preview endpoint: GET http://localhost:" + cfg.Port + "/og?palette=TOKEN")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		logger.Info("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
