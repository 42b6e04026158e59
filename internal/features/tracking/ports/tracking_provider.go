package ports

import (
	"context"
	"errors"

	records "freight-console/internal/features/records/domain"
	"freight-console/internal/features/tracking/domain"
)

// ErrTrackingNotFound is returned by providers when the carrier has no shipment for the number.
var ErrTrackingNotFound = errors.New("tracking not found")

// TrackingProvider defines the interface for carrier shipment-history implementations.
type TrackingProvider interface {
	// GetTrackingHistory retrieves the shipment history for the single number carried by params.
	GetTrackingHistory(ctx context.Context, params domain.LookupParams) (*domain.TrackingHistory, error)
	// SupportsCarrier returns true if this provider answers for the given carrier.
	SupportsCarrier(carrier records.Carrier) bool
}

// RecordReader loads stored order records.
type RecordReader interface {
	GetRecord(ctx context.Context, id string) (*records.OrderRecord, error)
}
