package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/templates"
)

type createTransitionRequest struct {
	ShipmentID entity.ShipmentID `json:"shipment_id"`
	Source     string            `json:"source"`
	Target     string            `json:"target"`
}

type selectCarrierRequest struct {
	Carrier string `json:"carrier"`
}

type resolveTransitionRequest struct {
	Confirmed bool   `json:"confirmed"`
	Carrier   string `json:"carrier"`
}

type transitionResponse struct {
	Request *entity.TransitionRequest  `json:"request"`
	Prompt  templates.TransitionPrompt `json:"prompt"`
}

type resolveResponse struct {
	Applied  bool             `json:"applied"`
	Shipment *entity.Shipment `json:"shipment,omitempty"`
}

type blockedResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Request *entity.TransitionRequest `json:"request"`
}

func (h *Handler) pending(req *entity.TransitionRequest) transitionResponse {
	return transitionResponse{
		Request: req,
		Prompt:  templates.BuildTransitionPrompt(*req, h.workflow.Carriers()),
	}
}

// RequestTransition records a drop onto another column. Dropping onto the
// same column answers 204.
func (h *Handler) RequestTransition(c echo.Context) error {
	var body createTransitionRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid json: "+err.Error())
	}
	if body.ShipmentID == "" {
		return badRequest(c, "shipment_id is required")
	}
	source, err := entity.ParseDispatchStatus(body.Source)
	if err != nil {
		return h.respondError(c, "request_transition", err)
	}
	target, err := entity.ParseDispatchStatus(body.Target)
	if err != nil {
		return h.respondError(c, "request_transition", err)
	}

	req, err := h.workflow.RequestTransition(c.Request().Context(), body.ShipmentID, source, target)
	if err != nil {
		return h.respondError(c, "request_transition", err)
	}
	if req == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusCreated, h.pending(req))
}

// GetTransition returns a pending request with its dialog text
func (h *Handler) GetTransition(c echo.Context) error {
	req, err := h.workflow.PendingTransition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, "get_transition", err)
	}
	return c.JSON(http.StatusOK, h.pending(req))
}

// SelectCarrier stores the carrier picked in the dialog
func (h *Handler) SelectCarrier(c echo.Context) error {
	var body selectCarrierRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid json: "+err.Error())
	}
	req, err := h.workflow.SelectCarrier(c.Request().Context(), c.Param("id"), body.Carrier)
	if err != nil {
		return h.respondError(c, "select_carrier", err)
	}
	return c.JSON(http.StatusOK, h.pending(req))
}

// ResolveTransition confirms or cancels a pending request
func (h *Handler) ResolveTransition(c echo.Context) error {
	var body resolveTransitionRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid json: "+err.Error())
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	shipment, err := h.workflow.ResolveTransition(ctx, id, body.Confirmed, body.Carrier)
	if errors.Is(err, entity.ErrCarrierRequired) {
		req, findErr := h.workflow.PendingTransition(ctx, id)
		if findErr != nil {
			return h.respondError(c, "resolve_transition", findErr)
		}
		return c.JSON(http.StatusUnprocessableEntity, blockedResponse{
			Error:   err.Error(),
			Message: req.ValidationMessage(),
			Request: req,
		})
	}
	if err != nil {
		return h.respondError(c, "resolve_transition", err)
	}
	return c.JSON(http.StatusOK, resolveResponse{Applied: shipment != nil, Shipment: shipment})
}
