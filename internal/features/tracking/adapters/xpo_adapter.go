package adapter

import (
	"context"
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

// XpoAdapter handles shipment history for XPO through its relay.
type XpoAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewXpoAdapter creates a new XpoAdapter with the given relay base URL.
func NewXpoAdapter(baseURL string, timeout time.Duration, proxySettings proxy.Settings) *XpoAdapter {
	return &XpoAdapter{
		baseURL: baseURL,
		client:  httpclient.NewClientWithProxy(timeout, proxySettings),
		logger:  logger.Named("tracking.xpo"),
	}
}

type xpoResponse struct {
	Data struct {
		ShipmentStatusDtls []struct {
			ProNbr         string `json:"proNbr"`
			ShipmentStatus struct {
				StatusCd string `json:"statusCd"`
				Status   string `json:"status"`
			} `json:"shipmentStatus"`
			Events []struct {
				OccurredDateTime string `json:"occurredDateTime"` // RFC 3339
				EventDesc        string `json:"eventDesc"`
				EventCd          string `json:"eventCd"`
				Location         struct {
					City    string `json:"city"`
					StateCd string `json:"stateCd"`
				} `json:"location"`
			} `json:"events"`
		} `json:"shipmentStatusDtls"`
	} `json:"data"`
}

// GetTrackingHistory retrieves shipment history from XPO.
func (a *XpoAdapter) GetTrackingHistory(ctx context.Context, params domain.LookupParams) (*domain.TrackingHistory, error) {
	var resp xpoResponse
	if err := fetchHistory(ctx, a.client, a.baseURL, params, &resp); err != nil {
		return nil, err
	}

	number, _ := params.Number()
	return a.parseResponse(resp, number)
}

func (a *XpoAdapter) parseResponse(resp xpoResponse, number domain.TrackingNumber) (*domain.TrackingHistory, error) {
	if len(resp.Data.ShipmentStatusDtls) == 0 {
		return nil, ports.ErrTrackingNotFound
	}

	result := resp.Data.ShipmentStatusDtls[0]

	a.logger.Debug("XPO shipment parsed",
		zap.String("pro", result.ProNbr),
		zap.String("status", result.ShipmentStatus.StatusCd),
		zap.Int("events", len(result.Events)),
	)

	events := make([]domain.TrackingEvent, 0, len(result.Events))
	for _, e := range result.Events {
		occurred, err := time.Parse(time.RFC3339, strings.TrimSpace(e.OccurredDateTime))
		if err != nil {
			occurred = time.Time{}
		}

		events = append(events, domain.TrackingEvent{
			Date: occurred,
			Text: strings.TrimSpace(e.EventDesc),
			City: joinLocation(e.Location.City, e.Location.StateCd),
			Code: e.EventCd,
		})
	}

	return &domain.TrackingHistory{
		Carrier:      records.CarrierXPO,
		Number:       number,
		GlobalStatus: xpoStatus(result.ShipmentStatus.StatusCd),
		History:      events,
	}, nil
}

func xpoStatus(code string) domain.TrackingStatus {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "DLVD", "FINAL_DLVD":
		return domain.TrackingStatusCompleted
	case "OFD", "ON_DLVRY":
		return domain.TrackingStatusOutForDelivery
	case "PKUP", "ENRT", "ARIV", "INTRNST":
		return domain.TrackingStatusInTransit
	case "EXCP", "DMGD", "RFSD", "HELD":
		return domain.TrackingStatusIncidence
	default:
		return domain.TrackingStatusProcessing
	}
}

// SupportsCarrier returns true for XPO.
func (a *XpoAdapter) SupportsCarrier(carrier records.Carrier) bool {
	return carrier == records.CarrierXPO
}
