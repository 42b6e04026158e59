package handler

import (
	"errors"
	"net/http"

	"freight-console/internal/core/logger"
	"freight-console/internal/core/server"
	"freight-console/internal/features/bol/domain"
	"freight-console/internal/features/bol/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BolHandler handles HTTP requests for building and submitting BOLs.
type BolHandler struct {
	service *service.BolService
}

// NewBolHandler creates a new instance of BolHandler.
func NewBolHandler(s *service.BolService) *BolHandler {
	return &BolHandler{
		service: s,
	}
}

// Register mounts the BOL routes.
func (h *BolHandler) Register(app fiber.Router) {
	app.Post("/bol/estes", h.Estes)
	app.Post("/bol/xpo", h.Xpo)
	app.Post("/bol/xpo/commodities/:index", h.UpdateXpoCommodity)
}

// CommodityUpdateRequest sets one field of one XPO commodity line.
type CommodityUpdateRequest struct {
	Form  domain.XpoFormState `json:"form"`
	Path  string              `json:"path"`
	Value any                 `json:"value"`
}

// Estes builds, and optionally submits, an Estes BOL.
// @Summary Build Estes BOL
// @Description Validates the form and returns the Estes API payload. With submit=true the payload is sent through the relay.
// @Tags bol
// @Accept json
// @Produce json
// @Param form body domain.EstesFormState true "Estes BOL form"
// @Param submit query bool false "Send the payload to the carrier"
// @Param recordId query string false "Record to attach the carrier response to"
// @Success 200 {object} domain.EstesBolRequest
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /bol/estes [post]
func (h *BolHandler) Estes(c *fiber.Ctx) error {
	var form domain.EstesFormState
	if err := c.BodyParser(&form); err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if c.QueryBool("submit") {
		out, err := h.service.SubmitEstes(c.UserContext(), form, c.Query("recordId"))
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(out)
	}

	req, err := h.service.BuildEstes(form)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(req)
}

// Xpo builds, and optionally submits, an XPO BOL.
// @Summary Build XPO BOL
// @Tags bol
// @Accept json
// @Produce json
// @Param form body domain.XpoFormState true "XPO BOL form"
// @Param submit query bool false "Send the payload to the carrier"
// @Param recordId query string false "Record to attach the carrier response to"
// @Success 200 {object} domain.XpoBolRequest
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /bol/xpo [post]
func (h *BolHandler) Xpo(c *fiber.Ctx) error {
	var form domain.XpoFormState
	if err := c.BodyParser(&form); err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if c.QueryBool("submit") {
		out, err := h.service.SubmitXpo(c.UserContext(), form, c.Query("recordId"))
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(out)
	}

	req, err := h.service.BuildXpo(form)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(req)
}

// UpdateXpoCommodity sets a nested field on one commodity line.
// @Summary Update XPO commodity field
// @Tags bol
// @Accept json
// @Produce json
// @Param index path int true "Commodity index"
// @Param request body CommodityUpdateRequest true "Form, dotted field path and value"
// @Success 200 {object} domain.XpoFormState
// @Failure 400 {object} server.ErrorResponse
// @Router /bol/xpo/commodities/{index} [post]
func (h *BolHandler) UpdateXpoCommodity(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, "index must be an integer")
	}

	var req CommodityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	form, err := h.service.UpdateXpoCommodity(req.Form, index, req.Path, req.Value)
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(form)
}

func (h *BolHandler) fail(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]server.FieldMessage, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, server.FieldMessage{Field: f.Field, Message: f.Message})
		}
		return c.Status(http.StatusUnprocessableEntity).JSON(server.ErrorResponse{
			Message: verr.Error(),
			RayID:   server.RayID(c),
			Fields:  fields,
		})
	}

	if errors.Is(err, service.ErrRelayNotConfigured) {
		return server.Fail(c, http.StatusServiceUnavailable, err.Error())
	}

	logger.Get().Error("BOL request failed",
		zap.String("path", c.Path()),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, err.Error())
}
