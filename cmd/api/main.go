package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/app"
	"github.com/recordhub/recordhub/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// signalNotify is swapped in tests to deliver signals directly
var signalNotify = signal.Notify

// runServer initializes the app, serves until a shutdown signal and drains active requests.
// A second signal aborts the drain.
func runServer(cfg *config.Config, appLogger logger.Logger, opts ...app.AppOption) error {
	opts = append([]app.AppOption{app.WithLogger(appLogger)}, opts...)
	appInstance := app.NewApp(cfg, opts...)

	if err := appInstance.Initialize(); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signalNotify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		serverError <- appInstance.Start()
	}()

	select {
	case err := <-serverError:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Server error")
		}
		return err
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received, send it again to force exit")
	}

	appInstance.SetShutdownTimeout(shutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout+5*time.Second)
	defer cancel()

	forceShutdown := make(chan os.Signal, 1)
	signalNotify(forceShutdown, os.Interrupt, syscall.SIGTERM)

	shutdownDone := make(chan error, 1)
	go func() {
		shutdownDone <- appInstance.Shutdown(ctx)
	}()

	select {
	case err := <-shutdownDone:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Error during graceful shutdown")
			return err
		}
		appLogger.Info("Server shut down gracefully")
		return nil
	case sig := <-forceShutdown:
		appLogger.WithField("signal", sig.String()).Warn("Force shutdown signal received")
		cancel()
		select {
		case <-shutdownDone:
		case <-time.After(2 * time.Second):
		}
		return fmt.Errorf("forced shutdown")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.Info(fmt.Sprintf("Starting API server on %s:%d", cfg.Server.Host, cfg.Server.Port))

	if err := runServer(cfg, appLogger); err != nil {
		osExit(1)
	}
}
