package handler

import (
	"errors"
	"net/http"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/server"
	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"
	"freight-console/internal/features/records/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecordHandler handles HTTP requests related to stored order records.
type RecordHandler struct {
	// service is the RecordService instance.
	service *service.RecordService
}

// NewRecordHandler creates a new instance of RecordHandler.
func NewRecordHandler(s *service.RecordService) *RecordHandler {
	return &RecordHandler{
		service: s,
	}
}

// Register mounts the record routes.
func (h *RecordHandler) Register(app fiber.Router) {
	app.Get("/records/:id", h.GetRecord)
	app.Get("/records/:id/carrier", h.GetCarrier)
	app.Get("/records/:id/shipment", h.GetShipment)
	app.Get("/records/:id/tracking-number", h.GetTrackingNumber)
	app.Post("/shipments/summary", h.SummarizeShipments)
}

// CarrierResponse is the classification of one record.
type CarrierResponse struct {
	RecordID string         `json:"recordId"`
	Carrier  domain.Carrier `json:"carrier"`
}

// SummaryRequest lists the records to summarize.
type SummaryRequest struct {
	IDs []string `json:"ids"`
}

// GetRecord returns a normalized record.
// @Summary Get record by ID
// @Description Fetch a stored order record with every JSON field normalized.
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} domain.OrderRecord
// @Failure 404 {object} server.ErrorResponse
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *fiber.Ctx) error {
	record, err := h.service.GetRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(record)
}

// GetCarrier classifies which carrier produced a record.
// @Summary Classify record carrier
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} CarrierResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /records/{id}/carrier [get]
func (h *RecordHandler) GetCarrier(c *fiber.Ctx) error {
	id := c.Params("id")
	carrier, err := h.service.ClassifyCarrier(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(CarrierResponse{RecordID: id, Carrier: carrier})
}

// GetShipment extracts the shipment summary of a record.
// @Summary Extract shipment summary
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} domain.ShipmentSummary
// @Failure 404 {object} server.ErrorResponse
// @Router /records/{id}/shipment [get]
func (h *RecordHandler) GetShipment(c *fiber.Ctx) error {
	summary, err := h.service.ShipmentSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}

// GetTrackingNumber infers the reference number of a record.
// @Summary Infer tracking number
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} server.ErrorResponse
// @Router /records/{id}/tracking-number [get]
func (h *RecordHandler) GetTrackingNumber(c *fiber.Ctx) error {
	number, ok, err := h.service.TrackingNumber(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return server.Fail(c, http.StatusNotFound, "no tracking number on record")
	}
	return c.JSON(number)
}

// SummarizeShipments extracts shipment summaries for a batch of records.
// @Summary Batch shipment summaries
// @Description Records without any shipment evidence are left out of the result.
// @Tags records
// @Accept json
// @Produce json
// @Param request body SummaryRequest true "Record IDs"
// @Success 200 {array} domain.RecordSummary
// @Failure 400 {object} server.ErrorResponse
// @Router /shipments/summary [post]
func (h *RecordHandler) SummarizeShipments(c *fiber.Ctx) error {
	var req SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.IDs) == 0 {
		return server.Fail(c, http.StatusBadRequest, "ids are required")
	}

	out, err := h.service.SummarizeShipments(c.UserContext(), req.IDs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *RecordHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ports.ErrRecordNotFound) {
		return server.Fail(c, http.StatusNotFound, err.Error())
	}

	logger.Get().Error("Record request failed",
		zap.String("path", c.Path()),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, err.Error())
}
