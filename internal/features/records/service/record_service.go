package service

import (
	"context"
	"fmt"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/metrics"
	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"
	tracking "freight-console/internal/features/tracking/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecordService derives carrier, shipment and tracking facts from stored records.
type RecordService struct {
	// store is the record store collaborator.
	store   ports.RecordStore
	workers int
	logger  *zap.Logger
}

// NewRecordService creates a new instance of RecordService.
// workers bounds the batch fan-out; values below one mean sequential.
func NewRecordService(store ports.RecordStore, workers int) *RecordService {
	if workers < 1 {
		workers = 1
	}
	return &RecordService{
		store:   store,
		workers: workers,
		logger:  logger.Named("records.service"),
	}
}

// GetRecord returns a normalized record.
func (s *RecordService) GetRecord(ctx context.Context, id string) (*domain.OrderRecord, error) {
	return s.store.GetRecord(ctx, id)
}

// ClassifyCarrier loads a record and decides which carrier produced it.
func (s *RecordService) ClassifyCarrier(ctx context.Context, id string) (domain.Carrier, error) {
	record, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return domain.CarrierUnknown, err
	}

	carrier := domain.ClassifyCarrier(*record)
	metrics.CarrierClassifications.WithLabelValues(string(carrier)).Inc()
	return carrier, nil
}

// ShipmentSummary loads a record and extracts its shipment summary.
func (s *RecordService) ShipmentSummary(ctx context.Context, id string) (domain.ShipmentSummary, error) {
	record, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return domain.ShipmentSummary{}, err
	}
	return domain.ExtractShipmentSummary(*record), nil
}

// SummarizeShipments extracts summaries for many records in parallel.
// Output follows input order; records without any shipment evidence are dropped.
// The first load failure cancels the remaining work and is returned.
func (s *RecordService) SummarizeShipments(ctx context.Context, ids []string) ([]domain.RecordSummary, error) {
	summaries := make([]domain.RecordSummary, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			record, err := s.store.GetRecord(gctx, id)
			if err != nil {
				return fmt.Errorf("record %s: %w", id, err)
			}
			summaries[i] = domain.RecordSummary{RecordID: id, Summary: domain.ExtractShipmentSummary(*record)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := domain.WithEvidence(summaries)
	metrics.ShipmentSummaries.WithLabelValues(metrics.OutcomeEmitted).Add(float64(len(out)))
	metrics.ShipmentSummaries.WithLabelValues(metrics.OutcomeDropped).Add(float64(len(summaries) - len(out)))

	s.logger.Debug("Shipments summarized",
		zap.Int("requested", len(ids)),
		zap.Int("emitted", len(out)),
	)

	return out, nil
}

// TrackingNumber loads a record and infers the number to look its shipment up by.
// The boolean is false when the record carries no usable number.
func (s *RecordService) TrackingNumber(ctx context.Context, id string) (tracking.TrackingNumber, bool, error) {
	record, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return tracking.TrackingNumber{}, false, err
	}

	number, ok := tracking.InferTrackingNumber(*record)
	return number, ok, nil
}

// AttachBolResponse stores a carrier BOL response on a record and returns the saved copy.
func (s *RecordService) AttachBolResponse(ctx context.Context, id string, response domain.Blob) (*domain.OrderRecord, error) {
	record, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.store.SaveRecord(ctx, record.WithBolResponse(response))
}
