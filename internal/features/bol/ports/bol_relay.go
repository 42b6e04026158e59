package ports

import (
	"context"

	records "freight-console/internal/features/records/domain"
)

// BolRelay sends a built BOL payload to a carrier through its backend relay.
// This is a Secondary Port (Driven Port).
type BolRelay interface {
	// SubmitBol posts the payload and returns the carrier's answer.
	SubmitBol(ctx context.Context, payload any) (records.Blob, error)
}

// RecordAttacher stores a carrier BOL response on the originating record.
type RecordAttacher interface {
	AttachBolResponse(ctx context.Context, id string, response records.Blob) (*records.OrderRecord, error)
}
