package service

import (
	"context"
	"errors"
	"fmt"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/metrics"
	records "freight-console/internal/features/records/domain"
	"freight-console/internal/features/tracking/domain"
	"freight-console/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var (
	// ErrCarrierNotSupported is returned when no provider supports the requested carrier.
	ErrCarrierNotSupported = errors.New("carrier not supported")
	// ErrCarrierUnknown is returned when a record carries no recognizable carrier evidence.
	ErrCarrierUnknown = errors.New("carrier could not be determined")
	// ErrNoTrackingNumber is returned when a record carries no usable reference number.
	ErrNoTrackingNumber = errors.New("no tracking number on record")
	// ErrInvalidLookup is returned when the lookup does not carry exactly one number.
	ErrInvalidLookup = errors.New("exactly one tracking number is required")
)

// TrackingService orchestrates shipment-history lookups across carrier providers.
type TrackingService struct {
	providers []ports.TrackingProvider
	records   ports.RecordReader
	logger    *zap.Logger
}

// NewTrackingService creates a new TrackingService with the given providers and record source.
func NewTrackingService(providers []ports.TrackingProvider, recordReader ports.RecordReader) *TrackingService {
	return &TrackingService{
		providers: providers,
		records:   recordReader,
		logger:    logger.Named("tracking.service"),
	}
}

// GetTrackingHistory retrieves the shipment history for a number at the given carrier.
func (s *TrackingService) GetTrackingHistory(ctx context.Context, carrier records.Carrier, params domain.LookupParams) (*domain.TrackingHistory, error) {
	number, ok := params.Number()
	if !ok {
		return nil, ErrInvalidLookup
	}

	for _, provider := range s.providers {
		if !provider.SupportsCarrier(carrier) {
			continue
		}

		history, err := provider.GetTrackingHistory(ctx, params)
		if err != nil {
			metrics.TrackingLookups.WithLabelValues(string(carrier), string(number.Kind), metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
		}

		metrics.TrackingLookups.WithLabelValues(string(carrier), string(number.Kind), metrics.OutcomeFound).Inc()
		return history, nil
	}

	return nil, ErrCarrierNotSupported
}

// TrackRecord loads a record, works out its carrier and reference number and
// looks up the shipment history with them.
func (s *TrackingService) TrackRecord(ctx context.Context, recordID string) (*domain.TrackingHistory, error) {
	record, err := s.records.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	carrier := records.ClassifyCarrier(*record)
	if !carrier.Known() {
		return nil, ErrCarrierUnknown
	}

	number, ok := domain.InferTrackingNumber(*record)
	if !ok {
		return nil, ErrNoTrackingNumber
	}

	s.logger.Debug("Tracking record",
		zap.String("record_id", recordID),
		zap.String("carrier", string(carrier)),
		zap.String("kind", string(number.Kind)),
	)

	return s.GetTrackingHistory(ctx, carrier, number.Params())
}
