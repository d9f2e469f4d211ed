package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dispatch-board-service/internal/interface/api"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

// NewHTTPRouter builds the echo instance serving the dashboard API, health and metrics
func NewHTTPRouter(h *api.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, log logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echoMiddleware.Recover())
	e.Use(api.RequestLogger(log))
	e.Use(api.RequestMetrics(m))

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/api/v1")
	v1.GET("/statuses", h.Statuses)
	v1.GET("/carriers", h.Carriers)
	v1.GET("/board", h.Board)

	v1.GET("/shipments/:id", h.GetShipment)
	v1.PUT("/shipments/:id", h.UpdateShipment)
	v1.PATCH("/shipments/:id/status", h.ChangeStatus)

	v1.POST("/transitions", h.RequestTransition)
	v1.GET("/transitions/:id", h.GetTransition)
	v1.PATCH("/transitions/:id/carrier", h.SelectCarrier)
	v1.POST("/transitions/:id/resolve", h.ResolveTransition)

	v1.GET("/customers", h.ListCustomers)
	v1.GET("/customers/:name/profile", h.CustomerProfile)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "route not found"})
	})

	log.Info("Registered HTTP routes", "count", len(e.Routes()))
	return e
}
