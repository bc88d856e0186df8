// Command httpd serves the tagging engine over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sunward-optics/frametag/internal/api"
	"github.com/sunward-optics/frametag/internal/bootstrap"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting http server",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	comps, err := bootstrap.NewComponents(context.Background(), cfg, log)
	if err != nil {
		log.Error("wire components", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = comps.Close() }()

	handler := api.NewHandler(comps.Classifier, comps.Reconciler, comps.Batch, comps.History, log)
	limiter := processor.NewRateLimiter(cfg.Service.RateLimitRPS, cfg.Service.RateLimitBurst)
	server := api.NewServer(api.ServerConfig{
		Name:    cfg.Service.Name,
		Version: cfg.Service.Version,
		Port:    cfg.Service.Port,
		Debug:   cfg.Service.Debug,
	}, handler, comps.Telemetry, limiter, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			os.Exit(1)
		}
		log.Info("server stopped")
	}
}
