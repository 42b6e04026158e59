package ports

import (
	"context"

	"freight-console/internal/features/records/domain"
)

// RecordStore defines access to the external order record store.
// This is a Secondary Port (Driven Port). Records come back normalized.
type RecordStore interface {
	// GetRecord retrieves a record by id. Missing records wrap ErrRecordNotFound.
	GetRecord(ctx context.Context, id string) (*domain.OrderRecord, error)
	// SaveRecord creates the record when it has no id and replaces it otherwise.
	SaveRecord(ctx context.Context, record domain.OrderRecord) (*domain.OrderRecord, error)
	// DeleteRecord removes a record by id.
	DeleteRecord(ctx context.Context, id string) error
}
