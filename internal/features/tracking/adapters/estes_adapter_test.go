package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight-console/internal/core/proxy"
	records "freight-console/internal/features/records/domain"
	"freight-console/internal/features/tracking/domain"
	"freight-console/internal/features/tracking/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstesAdapter_GetTrackingHistory verifies parsing of a delivered shipment.
func TestEstesAdapter_GetTrackingHistory(t *testing.T) {
	mockResponse := `{
		"data": [{
			"pro": "0123456789",
			"status": {"code": "DEL", "conciseStatus": "Delivered"},
			"movementHistory": [
				{"date": "2025-01-30", "time": "08:15:00", "description": "Picked up", "city": "Richmond", "state": "VA", "code": "PU"},
				{"date": "2025-01-31", "time": "", "description": " Delivered ", "city": "Atlanta", "state": "", "code": "DEL"}
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipment-history", r.URL.Path)
		assert.Equal(t, "0123456789", r.URL.Query().Get("pro"))
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	adapter := NewEstesAdapter(server.URL, 2*time.Second, proxy.Settings{})
	history, err := adapter.GetTrackingHistory(context.Background(), domain.LookupParams{PRO: "0123456789"})

	require.NoError(t, err)
	assert.Equal(t, records.CarrierEstes, history.Carrier)
	assert.Equal(t, domain.TrackingNumber{Kind: domain.KindPRO, Value: "0123456789"}, history.Number)
	assert.Equal(t, domain.TrackingStatusCompleted, history.GlobalStatus)
	require.Len(t, history.History, 2)

	assert.Equal(t, time.Date(2025, 1, 30, 8, 15, 0, 0, time.UTC), history.History[0].Date)
	assert.Equal(t, "Richmond, VA", history.History[0].City)
	assert.Equal(t, "PU", history.History[0].Code)

	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), history.History[1].Date)
	assert.Equal(t, "Delivered", history.History[1].Text)
	assert.Equal(t, "Atlanta", history.History[1].City)
}

// TestEstesAdapter_GetTrackingHistory_NotFound verifies empty and 404 answers.
func TestEstesAdapter_GetTrackingHistory_NotFound(t *testing.T) {
	t.Run("EmptyData", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		adapter := NewEstesAdapter(server.URL, 2*time.Second, proxy.Settings{})
		_, err := adapter.GetTrackingHistory(context.Background(), domain.LookupParams{BOL: "B-1"})
		assert.ErrorIs(t, err, ports.ErrTrackingNotFound)
	})

	t.Run("StatusNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		adapter := NewEstesAdapter(server.URL, 2*time.Second, proxy.Settings{})
		_, err := adapter.GetTrackingHistory(context.Background(), domain.LookupParams{PRO: "0123456789"})
		assert.ErrorIs(t, err, ports.ErrTrackingNotFound)
	})
}

// TestEstesAdapter_GetTrackingHistory_RequiresOneNumber verifies that ambiguous params never reach the relay.
func TestEstesAdapter_GetTrackingHistory_RequiresOneNumber(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	adapter := NewEstesAdapter(server.URL, 2*time.Second, proxy.Settings{})
	_, err := adapter.GetTrackingHistory(context.Background(), domain.LookupParams{PRO: "0123456789", PO: "PO-1"})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestEstesStatus(t *testing.T) {
	assert.Equal(t, domain.TrackingStatusOutForDelivery, estesStatus("ofd"))
	assert.Equal(t, domain.TrackingStatusInTransit, estesStatus("ENR"))
	assert.Equal(t, domain.TrackingStatusIncidence, estesStatus("DMG"))
	assert.Equal(t, domain.TrackingStatusProcessing, estesStatus("BOOKED"))
}

func TestEstesAdapter_SupportsCarrier(t *testing.T) {
	adapter := NewEstesAdapter("http://relay", time.Second, proxy.Settings{})
	assert.True(t, adapter.SupportsCarrier(records.CarrierEstes))
	assert.False(t, adapter.SupportsCarrier(records.CarrierXPO))
	assert.False(t, adapter.SupportsCarrier(records.CarrierUnknown))
}
