package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/neptune-labs/neptune-intents-hub/address"
	"github.com/neptune-labs/neptune-intents-hub/catalog"
	"github.com/neptune-labs/neptune-intents-hub/config"
	"github.com/neptune-labs/neptune-intents-hub/quote"
	"github.com/neptune-labs/neptune-intents-hub/router"
	"github.com/neptune-labs/neptune-intents-hub/rpc"
	"github.com/neptune-labs/neptune-intents-hub/safety"
	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "hub_config.toml", "Path to the hub config file")
	flag.Parse()

	// One logger for every package
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(out).With().Timestamp().Logger()

	rpc.SetLogger(logger)
	router.SetLogger(logger)
	catalog.SetLogger(logger)
	quote.SetLogger(logger)
	txbuilder.SetLogger(logger)
	safety.SetLogger(logger)
	address.SetLogger(logger)

	loader := config.NewDefaultHubConfigLoader()
	cfg, err := loader.LoadHubConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
	}

	catalogClient, err := catalog.NewClient(cfg.CatalogURL, time.Duration(cfg.CatalogTTLHours)*time.Hour)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create catalog client")
	}

	quoteClient, err := quote.NewClient(cfg.QuoteURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create quote client")
	}

	svc := router.NewService(catalogClient, quoteClient, time.Duration(cfg.PendingTTLMinutes)*time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := rpc.NewServer(ctx, buildServerConfig(cfg), svc)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create server")
	}

	// Warm the token catalog so the first quote does not pay for the
	// upstream fetch. Failure is not fatal, the cache refreshes lazily.
	warmCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	if _, err := catalogClient.Tokens(warmCtx); err != nil {
		logger.Warn().Err(err).Msg("Token catalog warmup failed")
	}
	cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
}

func buildServerConfig(cfg *config.HubConfig) *rpc.ServerConfig {
	rate := cfg.RatePerMinute
	burst := cfg.Burst

	return &rpc.ServerConfig{
		Address:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		AllowedOrigins: cfg.AllowedOrigins,
		EnableMetrics:  cfg.EnableMetrics,
		RatePerMinute:  &rate,
		Burst:          &burst,
		OTelConfig: &rpc.OTelConfig{
			ServiceName:    cfg.ServiceName,
			ServiceVersion: cfg.ServiceVersion,
			Environment:    cfg.Environment,
			EnableTracing:  cfg.EnableTracing,
			UseOTLPTraces:  cfg.UseOTLPTraces,
			OTLPTracesURL:  cfg.OTLPTracesURL,
			EnableMetrics:  cfg.EnableMetrics,
			UsePrometheus:  cfg.UsePrometheus,
			UseOTLPMetrics: cfg.UseOTLPMetrics,
			OTLPMetricsURL: cfg.OTLPMetricsURL,
			EnableLogs:     cfg.EnableLogs,
			UseOTLPLogs:    cfg.UseOTLPLogs,
			OTLPLogsURL:    cfg.OTLPLogsURL,
			InsecureOTLP:   cfg.InsecureOTLP,
		},
	}
}
