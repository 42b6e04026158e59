package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"
	tracking "freight-console/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memoryStore is an in-memory RecordStore that tracks peak concurrency.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]domain.OrderRecord
	delay   time.Duration

	inFlight atomic.Int32
	peak     atomic.Int32
}

func newMemoryStore(records ...domain.OrderRecord) *memoryStore {
	s := &memoryStore{records: map[string]domain.OrderRecord{}}
	for _, r := range records {
		s.records[r.ID] = r
	}
	return s
}

func (s *memoryStore) GetRecord(ctx context.Context, id string) (*domain.OrderRecord, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrRecordNotFound, id)
	}
	return &r, nil
}

func (s *memoryStore) SaveRecord(ctx context.Context, record domain.OrderRecord) (*domain.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return &record, nil
}

func (s *memoryStore) DeleteRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func zipRecord(id, zip string) domain.OrderRecord {
	return domain.OrderRecord{ID: id, OrdersJSONB: domain.Blob{"destinationZip": zip}}
}

func TestRecordService_ClassifyCarrier(t *testing.T) {
	store := newMemoryStore(domain.OrderRecord{
		ID:                     "rec-1",
		RateQuotesRequestJSONB: domain.Blob{"shippingCompany": "xpo"},
		BolResponseJSONB:       domain.Blob{"carrier": "estes"},
	})
	svc := NewRecordService(store, 4)

	carrier, err := svc.ClassifyCarrier(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CarrierXPO, carrier)

	carrier, err = svc.ClassifyCarrier(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
	assert.Equal(t, domain.CarrierUnknown, carrier)
}

func TestRecordService_ShipmentSummary(t *testing.T) {
	store := newMemoryStore(zipRecord("rec-1", "90210"))
	svc := NewRecordService(store, 1)

	summary, err := svc.ShipmentSummary(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.HandlingUnitPallet, summary.Type)
	assert.Equal(t, "90210", summary.DestinationZip)
}

func TestRecordService_SummarizeShipments(t *testing.T) {
	t.Run("KeepsInputOrderAndDropsEmpty", func(t *testing.T) {
		var (
			records []domain.OrderRecord
			ids     []string
		)
		for i := 0; i < 20; i++ {
			id := fmt.Sprintf("rec-%02d", i)
			ids = append(ids, id)
			if i%5 == 0 {
				records = append(records, domain.OrderRecord{ID: id})
				continue
			}
			records = append(records, zipRecord(id, fmt.Sprintf("%05d", i)))
		}

		store := newMemoryStore(records...)
		store.delay = 2 * time.Millisecond
		svc := NewRecordService(store, 3)

		out, err := svc.SummarizeShipments(context.Background(), ids)
		require.NoError(t, err)
		require.Len(t, out, 16)

		var prev string
		for _, s := range out {
			assert.Greater(t, s.RecordID, prev)
			prev = s.RecordID
			assert.NotEmpty(t, s.Summary.DestinationZip)
		}
		assert.Equal(t, "rec-01", out[0].RecordID)
		assert.Equal(t, "00001", out[0].Summary.DestinationZip)
		assert.LessOrEqual(t, store.peak.Load(), int32(3))
	})

	t.Run("MatchesSequentialFold", func(t *testing.T) {
		records := []domain.OrderRecord{
			zipRecord("a", "10001"),
			{ID: "b"},
			{ID: "c", OrdersJSONB: domain.Blob{"weight": 12.5}},
		}
		svc := NewRecordService(newMemoryStore(records...), 8)

		out, err := svc.SummarizeShipments(context.Background(), []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, domain.SummarizeShipments(records), out)
	})

	t.Run("NonShipmentOrderDataDropped", func(t *testing.T) {
		records := []domain.OrderRecord{
			{ID: "acct", OrdersJSONB: domain.Blob{"accountId": 42}},
			zipRecord("zip", "73301"),
		}
		svc := NewRecordService(newMemoryStore(records...), 2)

		out, err := svc.SummarizeShipments(context.Background(), []string{"acct", "zip"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "zip", out[0].RecordID)
	})

	t.Run("LoadFailureCancels", func(t *testing.T) {
		store := newMemoryStore(zipRecord("a", "10001"))
		svc := NewRecordService(store, 2)

		out, err := svc.SummarizeShipments(context.Background(), []string{"a", "missing", "a"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ports.ErrRecordNotFound)
		assert.Contains(t, err.Error(), "record missing")
	})

	t.Run("Empty", func(t *testing.T) {
		svc := NewRecordService(newMemoryStore(), 0)

		out, err := svc.SummarizeShipments(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestRecordService_TrackingNumber(t *testing.T) {
	store := newMemoryStore(
		domain.OrderRecord{ID: "rec-1", OrdersJSONB: domain.Blob{"pro": "12345", "PO": "PO-9"}},
		domain.OrderRecord{ID: "rec-2"},
	)
	svc := NewRecordService(store, 1)

	number, ok, err := svc.TrackingNumber(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tracking.TrackingNumber{Kind: tracking.KindPO, Value: "PO-9"}, number)

	_, ok, err = svc.TrackingNumber(context.Background(), "rec-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordService_AttachBolResponse(t *testing.T) {
	original := domain.OrderRecord{ID: "rec-1", OrdersJSONB: domain.Blob{"PO": "PO-9"}}
	store := newMemoryStore(original)
	svc := NewRecordService(store, 1)

	saved, err := svc.AttachBolResponse(context.Background(), "rec-1", domain.Blob{"bolNumber": "B-1"})
	require.NoError(t, err)
	assert.Equal(t, "B-1", saved.BolResponseJSONB["bolNumber"])
	assert.Equal(t, "PO-9", saved.OrdersJSONB["PO"])

	_, err = svc.AttachBolResponse(context.Background(), "missing", domain.Blob{})
	assert.True(t, errors.Is(err, ports.ErrRecordNotFound))
}
