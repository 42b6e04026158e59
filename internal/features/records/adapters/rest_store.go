package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"freight-console/internal/core/config"
	"freight-console/internal/core/httpclient"
	"freight-console/internal/core/logger"
	"freight-console/internal/core/proxy"
	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestRecordStore implements ports.RecordStore against the record store REST API.
type RestRecordStore struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the record store connection details.
	config config.RecordsConfig
	logger *zap.Logger
}

// NewRestRecordStore creates a new instance of RestRecordStore.
func NewRestRecordStore(cfg config.RecordsConfig, proxySettings proxy.Settings) *RestRecordStore {
	return &RestRecordStore{
		client: httpclient.NewClientWithProxy(cfg.Timeout(), proxySettings),
		config: cfg,
		logger: logger.Named("records.rest"),
	}
}

// recordEnvelope covers stores that wrap the record in a data field.
type recordEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// GetRecord fetches a record and normalizes its JSON fields.
func (s *RestRecordStore) GetRecord(ctx context.Context, id string) (*domain.OrderRecord, error) {
	var raw json.RawMessage
	if err := httpclient.DoJSON(ctx, s.client, http.MethodGet, s.recordURL(id), s.headers(), nil, &raw); err != nil {
		return nil, s.mapError(id, err)
	}

	return decodeRecord(raw)
}

// SaveRecord creates (POST) or replaces (PUT) a record.
func (s *RestRecordStore) SaveRecord(ctx context.Context, record domain.OrderRecord) (*domain.OrderRecord, error) {
	method := http.MethodPut
	target := s.recordURL(record.ID)
	if record.ID == "" {
		method = http.MethodPost
		target = s.collectionURL()
	}

	headers := s.headers()
	headers["Idempotency-Key"] = uuid.NewString()

	var raw json.RawMessage
	if err := httpclient.DoJSON(ctx, s.client, method, target, headers, record, &raw); err != nil {
		return nil, s.mapError(record.ID, err)
	}

	if len(raw) == 0 {
		return &record, nil
	}

	saved, err := decodeRecord(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Record saved",
		zap.String("method", method),
		zap.String("record_id", saved.ID),
	)

	return saved, nil
}

// DeleteRecord removes a record.
func (s *RestRecordStore) DeleteRecord(ctx context.Context, id string) error {
	if err := httpclient.DoJSON(ctx, s.client, http.MethodDelete, s.recordURL(id), s.headers(), nil, nil); err != nil {
		return s.mapError(id, err)
	}
	return nil
}

// HealthCheck verifies that the record store is reachable.
func (s *RestRecordStore) HealthCheck(ctx context.Context) error {
	target := s.collectionURL() + "?limit=1"
	if err := httpclient.DoJSON(ctx, s.client, http.MethodGet, target, s.headers(), nil, nil); err != nil {
		return fmt.Errorf("record store health check failed: %w", err)
	}
	return nil
}

func (s *RestRecordStore) collectionURL() string {
	return strings.TrimRight(s.config.URL, "/") + "/records"
}

func (s *RestRecordStore) recordURL(id string) string {
	return s.collectionURL() + "/" + url.PathEscape(id)
}

func (s *RestRecordStore) headers() map[string]string {
	headers := map[string]string{}
	if s.config.Token != "" {
		headers["Authorization"] = "Bearer " + s.config.Token
	}
	return headers
}

func (s *RestRecordStore) mapError(id string, err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ports.ErrRecordNotFound, id)
	}
	return fmt.Errorf("record store request failed: %w", err)
}

// decodeRecord accepts a bare record or one wrapped in {"data": ...}.
func decodeRecord(raw json.RawMessage) (*domain.OrderRecord, error) {
	var env recordEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && env.Data[0] == '{' {
		raw = env.Data
	}

	var record domain.OrderRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &record, nil
}
