package handler

import (
	"errors"
	"net/http"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/server"
	records "freight-console/internal/features/records/domain"
	recordports "freight-console/internal/features/records/ports"
	"freight-console/internal/features/tracking/domain"
	"freight-console/internal/features/tracking/ports"
	"freight-console/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Register mounts the tracking routes.
func (h *TrackingHandler) Register(app fiber.Router) {
	app.Get("/tracking/:carrier", h.GetTrackingHistory)
	app.Get("/records/:id/tracking", h.TrackRecord)
}

// GetTrackingHistory godoc
// @Summary Get shipment history
// @Description Looks up a shipment at the carrier by exactly one reference number
// @Tags tracking
// @Produce json
// @Param carrier path string true "Carrier (estes, xpo)"
// @Param pro query string false "PRO number"
// @Param bol query string false "BOL number"
// @Param pur query string false "Pickup request number"
// @Param po query string false "Purchase order number"
// @Param ldn query string false "Load number"
// @Param exl query string false "EXL number"
// @Param interlinePro query string false "Interline PRO number"
// @Success 200 {object} domain.TrackingHistory
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /tracking/{carrier} [get]
func (h *TrackingHandler) GetTrackingHistory(c *fiber.Ctx) error {
	carrier := records.ParseCarrier(c.Params("carrier"))
	if !carrier.Known() {
		return server.Fail(c, http.StatusNotFound, "carrier not supported")
	}

	params := domain.LookupParams{
		PRO:          c.Query("pro"),
		PO:           c.Query("po"),
		BOL:          c.Query("bol"),
		PUR:          c.Query("pur"),
		LDN:          c.Query("ldn"),
		EXL:          c.Query("exl"),
		InterlinePro: c.Query("interlinePro"),
	}

	history, err := h.trackingService.GetTrackingHistory(c.UserContext(), carrier, params)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(history)
}

// TrackRecord godoc
// @Summary Track a stored record
// @Description Infers carrier and reference number from a stored record and looks up its shipment history
// @Tags tracking
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} domain.TrackingHistory
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /records/{id}/tracking [get]
func (h *TrackingHandler) TrackRecord(c *fiber.Ctx) error {
	history, err := h.trackingService.TrackRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(history)
}

func (h *TrackingHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidLookup):
		return server.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCarrierNotSupported):
		return server.Fail(c, http.StatusNotFound, "carrier not supported")
	case errors.Is(err, ports.ErrTrackingNotFound):
		return server.Fail(c, http.StatusNotFound, "tracking not found")
	case errors.Is(err, recordports.ErrRecordNotFound):
		return server.Fail(c, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrCarrierUnknown), errors.Is(err, service.ErrNoTrackingNumber):
		return server.Fail(c, http.StatusUnprocessableEntity, err.Error())
	}

	logger.Get().Error("Tracking lookup failed",
		zap.String("path", c.Path()),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, err.Error())
}
