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
	"freight-console/internal/features/tracking/domain"
	"freight-console/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// EstesAdapter handles shipment history for Estes through its relay.
type EstesAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewEstesAdapter creates a new EstesAdapter with the given relay base URL.
func NewEstesAdapter(baseURL string, timeout time.Duration, proxySettings proxy.Settings) *EstesAdapter {
	return &EstesAdapter{
		baseURL: baseURL,
		client:  httpclient.NewClientWithProxy(timeout, proxySettings),
		logger:  logger.Named("tracking.estes"),
	}
}

// estesResponse represents the JSON structure returned by the Estes relay.
type estesResponse struct {
	Data []struct {
		Pro    string `json:"pro"`
		Status struct {
			Code          string `json:"code"`
			ConciseStatus string `json:"conciseStatus"`
		} `json:"status"`
		MovementHistory []struct {
			Date        string `json:"date"` // Format: "2025-01-31"
			Time        string `json:"time"` // Format: "14:05:00", may be empty
			Description string `json:"description"`
			City        string `json:"city"`
			State       string `json:"state"`
			Code        string `json:"code"`
		} `json:"movementHistory"`
	} `json:"data"`
}

// GetTrackingHistory retrieves shipment history from Estes.
func (a *EstesAdapter) GetTrackingHistory(ctx context.Context, params domain.LookupParams) (*domain.TrackingHistory, error) {
	var resp estesResponse
	if err := fetchHistory(ctx, a.client, a.baseURL, params, &resp); err != nil {
		return nil, err
	}

	number, _ := params.Number()
	return a.parseResponse(resp, number)
}

func (a *EstesAdapter) parseResponse(resp estesResponse, number domain.TrackingNumber) (*domain.TrackingHistory, error) {
	if len(resp.Data) == 0 {
		return nil, ports.ErrTrackingNotFound
	}

	result := resp.Data[0]

	a.logger.Debug("Estes shipment parsed",
		zap.String("pro", result.Pro),
		zap.String("status", result.Status.Code),
		zap.Int("events", len(result.MovementHistory)),
	)

	events := make([]domain.TrackingEvent, 0, len(result.MovementHistory))
	for _, m := range result.MovementHistory {
		events = append(events, domain.TrackingEvent{
			Date: parseEstesTime(m.Date, m.Time),
			Text: strings.TrimSpace(m.Description),
			City: joinLocation(m.City, m.State),
			Code: m.Code,
		})
	}

	return &domain.TrackingHistory{
		Carrier:      records.CarrierEstes,
		Number:       number,
		GlobalStatus: estesStatus(result.Status.Code),
		History:      events,
	}, nil
}

func estesStatus(code string) domain.TrackingStatus {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "DEL", "DELIVERED":
		return domain.TrackingStatusCompleted
	case "OFD":
		return domain.TrackingStatusOutForDelivery
	case "PU", "ENR", "ARR", "DEP":
		return domain.TrackingStatusInTransit
	case "EXC", "DMG", "REF", "DLY":
		return domain.TrackingStatusIncidence
	default:
		return domain.TrackingStatusProcessing
	}
}

// parseEstesTime reads the relay's separate date and time columns as UTC.
// Unparseable values yield the zero time.
func parseEstesTime(date, clock string) time.Time {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if clock == "" {
		t, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return time.Time{}
		}
		return t
	}

	t, err := time.Parse(time.DateTime, fmt.Sprintf("%s %s", date, clock))
	if err != nil {
		return time.Time{}
	}
	return t
}

// SupportsCarrier returns true for Estes.
func (a *EstesAdapter) SupportsCarrier(carrier records.Carrier) bool {
	return carrier == records.CarrierEstes
}
