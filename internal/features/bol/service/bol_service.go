package service

import (
	"context"
	"errors"
	"fmt"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/metrics"
	"freight-console/internal/features/bol/domain"
	"freight-console/internal/features/bol/ports"
	records "freight-console/internal/features/records/domain"

	"go.uber.org/zap"
)

// ErrRelayNotConfigured is returned when a submission targets a carrier without a relay.
var ErrRelayNotConfigured = errors.New("no BOL relay configured for carrier")

// BolService validates BOL forms, builds carrier payloads and optionally submits them.
type BolService struct {
	relays   map[records.Carrier]ports.BolRelay
	attacher ports.RecordAttacher
	logger   *zap.Logger
}

// NewBolService creates a BolService. Relays are keyed by carrier; a nil
// attacher disables saving responses on records.
func NewBolService(relays map[records.Carrier]ports.BolRelay, attacher ports.RecordAttacher) *BolService {
	return &BolService{
		relays:   relays,
		attacher: attacher,
		logger:   logger.Named("bol.service"),
	}
}

// BuildEstes validates an Estes form and returns the request payload.
func (s *BolService) BuildEstes(form domain.EstesFormState) (domain.EstesBolRequest, error) {
	if err := domain.ValidateEstesForm(form); err != nil {
		metrics.BolRequests.WithLabelValues(string(records.CarrierEstes), metrics.OutcomeInvalid).Inc()
		return domain.EstesBolRequest{}, err
	}

	metrics.BolRequests.WithLabelValues(string(records.CarrierEstes), metrics.OutcomeBuilt).Inc()
	return domain.BuildEstesBolRequest(form), nil
}

// BuildXpo validates an XPO form and returns the request payload.
func (s *BolService) BuildXpo(form domain.XpoFormState) (domain.XpoBolRequest, error) {
	if err := domain.ValidateXpoForm(form); err != nil {
		metrics.BolRequests.WithLabelValues(string(records.CarrierXPO), metrics.OutcomeInvalid).Inc()
		return domain.XpoBolRequest{}, err
	}

	metrics.BolRequests.WithLabelValues(string(records.CarrierXPO), metrics.OutcomeBuilt).Inc()
	return domain.BuildXpoBolRequest(form), nil
}

// SubmitEstes builds the Estes payload and sends it through the Estes relay.
// When recordID is set the carrier response is saved on that record.
func (s *BolService) SubmitEstes(ctx context.Context, form domain.EstesFormState, recordID string) (*domain.Submission, error) {
	req, err := s.BuildEstes(form)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, records.CarrierEstes, req, recordID)
}

// SubmitXpo builds the XPO payload and sends it through the XPO relay.
func (s *BolService) SubmitXpo(ctx context.Context, form domain.XpoFormState, recordID string) (*domain.Submission, error) {
	req, err := s.BuildXpo(form)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, records.CarrierXPO, req, recordID)
}

// UpdateXpoCommodity sets one field of one commodity line and returns the new form.
func (s *BolService) UpdateXpoCommodity(form domain.XpoFormState, index int, path string, value any) (domain.XpoFormState, error) {
	return domain.SetCommodityField(form, index, path, value)
}

func (s *BolService) submit(ctx context.Context, carrier records.Carrier, payload any, recordID string) (*domain.Submission, error) {
	relay, ok := s.relays[carrier]
	if !ok || relay == nil {
		return nil, fmt.Errorf("%w: %s", ErrRelayNotConfigured, carrier)
	}

	resp, err := relay.SubmitBol(ctx, payload)
	if err != nil {
		metrics.BolRequests.WithLabelValues(string(carrier), metrics.OutcomeFailed).Inc()
		return nil, err
	}
	metrics.BolRequests.WithLabelValues(string(carrier), metrics.OutcomeSubmitted).Inc()

	out := &domain.Submission{
		Carrier:  carrier,
		Request:  payload,
		Response: resp,
		RecordID: recordID,
	}

	if recordID == "" || s.attacher == nil {
		return out, nil
	}

	if _, err := s.attacher.AttachBolResponse(ctx, recordID, resp); err != nil {
		s.logger.Error("BOL accepted but record update failed",
			zap.String("carrier", string(carrier)),
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		return out, nil
	}

	out.RecordUpdated = true
	return out, nil
}
