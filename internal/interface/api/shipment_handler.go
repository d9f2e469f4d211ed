package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/internal/domain/entity"
)

type changeStatusRequest struct {
	DispatchStatus string `json:"dispatch_status"`
}

// GetShipment returns the tabbed detail view
func (h *Handler) GetShipment(c echo.Context) error {
	detail, err := h.details.Detail(c.Request().Context(), entity.ShipmentID(c.Param("id")))
	if err != nil {
		return h.respondError(c, "get_shipment", err)
	}
	return c.JSON(http.StatusOK, detail)
}

// UpdateShipment replaces a shipment with the request body
func (h *Handler) UpdateShipment(c echo.Context) error {
	id := entity.ShipmentID(c.Param("id"))

	var record entity.Shipment
	if err := c.Bind(&record); err != nil {
		return badRequest(c, "invalid json: "+err.Error())
	}
	if record.ID == "" {
		record.ID = id
	}
	if record.ID != id {
		return badRequest(c, "body id does not match path id")
	}
	if status, err := entity.ParseDispatchStatus(string(record.DispatchStatus)); err == nil {
		record.DispatchStatus = status
	}

	updated, err := h.workflow.UpdateShipment(c.Request().Context(), record)
	if err != nil {
		return h.respondError(c, "update_shipment", err)
	}
	return c.JSON(http.StatusOK, updated)
}

// ChangeStatus sets a shipment's dispatch status from the detail view
func (h *Handler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json: "+err.Error())
	}
	status, err := entity.ParseDispatchStatus(req.DispatchStatus)
	if err != nil {
		return h.respondError(c, "change_status", err)
	}

	updated, err := h.workflow.ChangeStatus(c.Request().Context(), entity.ShipmentID(c.Param("id")), status)
	if err != nil {
		return h.respondError(c, "change_status", err)
	}
	return c.JSON(http.StatusOK, updated)
}
