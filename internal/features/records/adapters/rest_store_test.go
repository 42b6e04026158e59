package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-console/internal/core/config"
	"freight-console/internal/core/proxy"
	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(url string) *RestRecordStore {
	return NewRestRecordStore(config.RecordsConfig{
		URL:            url,
		Token:          "tok",
		TimeoutSeconds: 2,
	}, proxy.Settings{})
}

// TestRestRecordStore_GetRecord_Success verifies fetching and normalization of a stored record.
func TestRestRecordStore_GetRecord_Success(t *testing.T) {
	mockResponse := `{
		"id": "rec-1",
		"sku": "SKU-1",
		"marketplace": "wayfair",
		"status": "quoted",
		"ordersJsonb": "{\"#PRO\":\"1234567890\"}",
		"rateQuotesRequestJsonb": {"shippingCompany": "estes"},
		"rateQuotesResponseJsonb": null,
		"createdAt": "2025-01-02T03:04:05Z"
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records/rec-1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	record, err := newTestStore(server.URL).GetRecord(context.Background(), "rec-1")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "rec-1", record.ID)
	assert.Equal(t, "wayfair", record.Marketplace)
	assert.Equal(t, domain.Blob{"#PRO": "1234567890"}, record.OrdersJSONB)
	assert.Equal(t, "estes", record.RateQuotesRequestJSONB["shippingCompany"])
	assert.Nil(t, record.RateQuotesResponseJSONB)
}

// TestRestRecordStore_GetRecord_Envelope verifies records wrapped in a data field.
func TestRestRecordStore_GetRecord_Envelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"id": "rec-2", "bolResponseJsonb": {"bolNumber": "B-1"}}}`))
	}))
	defer server.Close()

	record, err := newTestStore(server.URL).GetRecord(context.Background(), "rec-2")

	require.NoError(t, err)
	assert.Equal(t, "rec-2", record.ID)
	assert.Equal(t, "B-1", record.BolResponseJSONB["bolNumber"])
}

// TestRestRecordStore_GetRecord_NotFound verifies 404 handling.
func TestRestRecordStore_GetRecord_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	record, err := newTestStore(server.URL).GetRecord(context.Background(), "missing")

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

// TestRestRecordStore_GetRecord_ServerError verifies non-404 failures are wrapped.
func TestRestRecordStore_GetRecord_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestStore(server.URL).GetRecord(context.Background(), "rec-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "record store request failed")
}

// TestRestRecordStore_SaveRecord verifies POST for new records and PUT for existing ones.
func TestRestRecordStore_SaveRecord(t *testing.T) {
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["id"] == "" {
			body["id"] = "rec-new"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	store := newTestStore(server.URL)

	created, err := store.SaveRecord(context.Background(), domain.OrderRecord{
		SKU:              "SKU-9",
		BolResponseJSONB: domain.Blob{"bolNumber": "B-9"},
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-new", created.ID)
	assert.Equal(t, "B-9", created.BolResponseJSONB["bolNumber"])

	_, err = store.SaveRecord(context.Background(), domain.OrderRecord{ID: "rec-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /records", "PUT /records/rec-1"}, methods)
}

// TestRestRecordStore_DeleteRecord verifies DELETE requests.
func TestRestRecordStore_DeleteRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/records/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	assert.NoError(t, newTestStore(server.URL).DeleteRecord(context.Background(), "rec-1"))
}

// TestRestRecordStore_HealthCheck verifies the health probe.
func TestRestRecordStore_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	assert.NoError(t, newTestStore(server.URL).HealthCheck(context.Background()))
}
