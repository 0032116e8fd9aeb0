package main

import (
	"fmt"
	"os"

	"github.com/legalzoom/hello-app/internal/config"
	"github.com/legalzoom/hello-app/internal/logging"
	"github.com/legalzoom/hello-app/pkg/adapters/metrics/prometheus"
	"github.com/legalzoom/hello-app/pkg/api/grpc"
	"github.com/legalzoom/hello-app/pkg/api/http"

	"go.uber.org/zap"
)

var (
	// ApplicationName is substituted when the project is generated
	// (or overridden with -ldflags "-X main.ApplicationName=...").
	ApplicationName = "demo-app"

	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting application",
		zap.String("app", ApplicationName),
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	metricsCollector := prometheus.NewCollector()
	metricsCollector.SetBuildInfo(ApplicationName, Version)

	if addr := cfg.MetricsAddr(); addr != "" {
		go func() {
			logger.Info("starting metrics server", zap.String("addr", addr))
			if err := metricsCollector.ListenAndServe(addr); err != nil {
				logger.Fatal("metrics server failed", zap.Error(err))
			}
		}()
	}

	if addr := cfg.GRPCAddr(); addr != "" {
		probeServer := grpc.NewServer(&grpc.Config{
			Addr:    addr,
			AppName: ApplicationName,
			Logger:  logger,
		})

		go func() {
			if err := probeServer.Start(); err != nil {
				logger.Fatal("gRPC probe server failed", zap.Error(err))
			}
		}()
	}

	httpServer := http.NewServer(&http.Config{
		Addr:    cfg.HTTPAddr(),
		AppName: ApplicationName,
		Debug:   cfg.Debug,
		Logger:  logger,
		Metrics: metricsCollector,
	})

	// Foreground development server; blocks until the process dies
	if err := httpServer.Start(); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
