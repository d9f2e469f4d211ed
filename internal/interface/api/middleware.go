package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

// RequestMetrics observes request latency per route template
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(responseStatus(c, err))).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// RequestLogger writes one debug line per request
func RequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Debug("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", responseStatus(c, err),
				"duration", time.Since(start))
			return err
		}
	}
}

func responseStatus(c echo.Context, err error) int {
	var he *echo.HTTPError
	if err != nil && errors.As(err, &he) {
		return he.Code
	}
	return c.Response().Status
}
