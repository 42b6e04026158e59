package main

import (
	"context"
	"log"
	"time"

	"freight-console/internal/core/cache"
	"freight-console/internal/core/config"
	"freight-console/internal/core/logger"
	"freight-console/internal/core/server"
	bolhandler "freight-console/internal/features/bol/handler"
	bolservice "freight-console/internal/features/bol/service"
	recordadapter "freight-console/internal/features/records/adapters"
	recordhandler "freight-console/internal/features/records/handler"
	recordports "freight-console/internal/features/records/ports"
	recordservice "freight-console/internal/features/records/service"
	trackinghandler "freight-console/internal/features/tracking/handler"
	trackingservice "freight-console/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Freight Console API
// @version 1.0
// @description Reconciles stored freight order records and builds Estes and XPO bill-of-lading requests.
// @contact.name API Support
// @contact.email support@freightconsole.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	proxySettings := cfg.Proxy.Settings()

	// Initialize Record Store and run Health Check
	restStore := recordadapter.NewRestRecordStore(cfg.Records, proxySettings)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := restStore.HealthCheck(ctx); err != nil {
		cancel()
		l.Fatal("Record store Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Record store connection verified")

	var store recordports.RecordStore = restStore
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "freight-console")
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			cancel()
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		cancel()

		store = recordadapter.NewCachedRecordStore(restStore, redisCache, cfg.Redis.RecordTTL())
		l.Info("Record cache enabled", zap.Duration("ttl", cfg.Redis.RecordTTL()))
	}

	// Initialize Record Service & Handler
	recordSvc := recordservice.NewRecordService(store, cfg.ShipmentBatchWorkers)
	recordHdl := recordhandler.NewRecordHandler(recordSvc)

	// Initialize Tracking Providers & BOL Relays for configured carriers
	trackingProviders, relays := carrierAdapters(cfg.Carriers, proxySettings, l)

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(trackingProviders, recordSvc)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize BOL Service & Handler
	bolSvc := bolservice.NewBolService(relays, recordSvc)
	bolHdl := bolhandler.NewBolHandler(bolSvc)

	srv := server.New(cfg)

	// Register Routes
	recordHdl.Register(srv.App)
	trackingHdl.Register(srv.App)
	bolHdl.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
