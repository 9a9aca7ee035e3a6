package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello/hello/config"
	"hello/hello/routes"
	"hello/hello/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		panic("Failed to create logs directory: " + err.Error())
	}
	defer logging.Sync()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: routes.NewRouter(cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		logging.AppLogger.Info("server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("static_dir", cfg.StaticDir),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		logging.ErrorLogger.Error("server listen error", zap.Error(err))
		logging.AppLogger.Error("server listen error", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	case <-sigCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return
	}
	logging.AppLogger.Info("server shutdown complete")
}
