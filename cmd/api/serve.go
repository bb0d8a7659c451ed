package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sampleemps-api/internal/handler"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	logger := a.logger

	// Запуск миграций
	if err := a.migrate(false); err != nil {
		return err
	}

	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	routerOpts := handler.RouterOptions{AllowedOrigins: a.cfg.Server.AllowedOrigins}
	if a.cfg.Metrics.Enabled {
		routerOpts.MetricsPath = a.cfg.Metrics.Path
	}

	router := handler.NewRouter(
		handler.NewEmployeeHandler(a.empService, logger),
		handler.NewJobTitleHandler(a.jobService, logger),
		handler.NewDepartmentHandler(a.deptService, logger),
		sqlDB,
		logger,
		routerOpts,
	)

	server := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", a.cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen on port %s: %w", a.cfg.Server.Port, err)
	}

	<-done
	logger.Info("server stopped")
	return nil
}
