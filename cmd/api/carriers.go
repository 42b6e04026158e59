package main

import (
	"freight-console/internal/core/config"
	"freight-console/internal/core/proxy"
	boladapter "freight-console/internal/features/bol/adapters"
	bolports "freight-console/internal/features/bol/ports"
	records "freight-console/internal/features/records/domain"
	trackingadapter "freight-console/internal/features/tracking/adapters"
	trackingports "freight-console/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// carrierAdapters builds the tracking providers and BOL relays for every
// carrier whose relay URL is configured. Unconfigured carriers are skipped,
// so their BOL submissions fail with ErrRelayNotConfigured.
func carrierAdapters(cfg config.CarrierConfig, proxySettings proxy.Settings, l *zap.Logger) ([]trackingports.TrackingProvider, map[records.Carrier]bolports.BolRelay) {
	var providers []trackingports.TrackingProvider
	relays := make(map[records.Carrier]bolports.BolRelay)

	if cfg.EstesURL != "" {
		providers = append(providers, trackingadapter.NewEstesAdapter(cfg.EstesURL, cfg.Timeout(), proxySettings))
		relays[records.CarrierEstes] = boladapter.NewRelayAdapter(records.CarrierEstes, cfg.EstesURL, cfg.Timeout(), proxySettings)
	} else {
		l.Warn("Estes relay not configured", zap.String("env", "ESTES_RELAY_URL"))
	}

	if cfg.XpoURL != "" {
		providers = append(providers, trackingadapter.NewXpoAdapter(cfg.XpoURL, cfg.Timeout(), proxySettings))
		relays[records.CarrierXPO] = boladapter.NewRelayAdapter(records.CarrierXPO, cfg.XpoURL, cfg.Timeout(), proxySettings)
	} else {
		l.Warn("XPO relay not configured", zap.String("env", "XPO_RELAY_URL"))
	}

	return providers, relays
}
