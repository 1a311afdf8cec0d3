package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/catalog"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/config"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/discovery"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/lootbox"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/server"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/sse"
)

const shutdownTimeout = 15 * time.Second

// @title Valorant Lootbox API
// @version 1.0
// @description Simulated Valorant weapon-skin lootbox. Skins are pulled from the public catalog, bucketed by rarity tier and drawn by weighted odds.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		logger.Warn("Configuration warning", "warning", w)
	}

	if err := run(cfg); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := catalog.NewLoader(catalogSource(cfg)).Load(ctx)

	hub := sse.NewHub()
	hub.Start()

	svc, err := lootbox.NewService(pool, hub, lootbox.Config{
		RevealDelay:      cfg.RevealDelay,
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
	})
	if err != nil {
		hub.Stop()
		return fmt.Errorf("create lootbox service: %w", err)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, svc, hub)

	registrar := registerService(cfg)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Lootbox service ready", "port", cfg.Port, "environment", cfg.Environment, "skins", pool.Total())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received")
	if registrar != nil {
		if err := registrar.Deregister(); err != nil {
			logger.Warn(discovery.LogMsgDeregisterFailed, "error", err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// registerService announces the instance to Consul when configured. Failure is not fatal.
func registerService(cfg *config.Config) *discovery.Registrar {
	if !cfg.UsesDiscovery() {
		return nil
	}
	registrar, err := discovery.NewRegistrar(discovery.Options{
		Address:     cfg.ConsulAddr,
		ServiceName: cfg.ServiceName,
		Port:        cfg.Port,
		Host:        cfg.ServiceHost,
		Tags:        []string{cfg.Environment, cfg.Version},
	})
	if err == nil {
		err = registrar.Register()
	}
	if err != nil {
		logger.Warn(discovery.LogMsgRegisterFailed, "error", err)
		return nil
	}
	return registrar
}

// catalogSource picks the local fixture when one is configured, otherwise the live API.
func catalogSource(cfg *config.Config) catalog.Source {
	if cfg.UsesFixture() {
		logger.Info("Using catalog fixture", "path", cfg.CatalogFixturePath)
		return catalog.NewFileSource(cfg.CatalogFixturePath)
	}
	return catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout, cfg.CatalogMaxRetries)
}
