package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"freight-console/internal/core/httpclient"
	"freight-console/internal/core/logger"
	"freight-console/internal/core/proxy"
	records "freight-console/internal/features/records/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelayAdapter implements ports.BolRelay against a carrier relay's POST /bol.
type RelayAdapter struct {
	carrier records.Carrier
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewRelayAdapter creates a relay client for one carrier.
func NewRelayAdapter(carrier records.Carrier, baseURL string, timeout time.Duration, proxySettings proxy.Settings) *RelayAdapter {
	return &RelayAdapter{
		carrier: carrier,
		baseURL: baseURL,
		client:  httpclient.NewClientWithProxy(timeout, proxySettings),
		logger:  logger.Named("bol.relay").With(zap.String("carrier", string(carrier))),
	}
}

// SubmitBol posts the payload with a fresh idempotency key.
func (a *RelayAdapter) SubmitBol(ctx context.Context, payload any) (records.Blob, error) {
	target := strings.TrimRight(a.baseURL, "/") + "/bol"
	key := uuid.NewString()

	var resp records.Blob
	err := httpclient.DoJSON(ctx, a.client, http.MethodPost, target, map[string]string{
		"Idempotency-Key": key,
	}, payload, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s relay rejected BOL: %w", strings.ToLower(string(a.carrier)), err)
	}

	if resp == nil {
		resp = records.Blob{}
	}

	a.logger.Info("BOL submitted", zap.String("idempotency_key", key))
	return resp, nil
}
