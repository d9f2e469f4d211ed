package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and the size of the in-memory collection
func (h *Handler) Health(c echo.Context) error {
	count, err := h.shipmentRepo.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"version":    h.version,
		"shipments":  count,
		"uptime_sec": int(time.Since(h.startedAt).Seconds()),
	})
}
