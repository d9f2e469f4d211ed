package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
	"dispatch-board-service/internal/usecase"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

// Handler serves the dispatch board JSON API
type Handler struct {
	workflow     *usecase.DispatchWorkflow
	customers    *usecase.CustomerAggregator
	details      *usecase.ShipmentDetailService
	shipmentRepo repository.ShipmentRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
	version      string
	startedAt    time.Time
}

// NewHandler creates a new API handler
func NewHandler(
	workflow *usecase.DispatchWorkflow,
	customers *usecase.CustomerAggregator,
	details *usecase.ShipmentDetailService,
	shipmentRepo repository.ShipmentRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
	version string,
) *Handler {
	return &Handler{
		workflow:     workflow,
		customers:    customers,
		details:      details,
		shipmentRepo: shipmentRepo,
		metrics:      metrics,
		logger:       logger,
		version:      version,
		startedAt:    time.Now(),
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusCode maps domain errors onto HTTP status codes
func StatusCode(err error) int {
	switch {
	case errors.Is(err, entity.ErrShipmentNotFound),
		errors.Is(err, entity.ErrTransitionNotFound),
		errors.Is(err, entity.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidShipment),
		errors.Is(err, entity.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrStatusMismatch):
		return http.StatusConflict
	case errors.Is(err, entity.ErrCarrierRequired):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondError(c echo.Context, operation string, err error) error {
	code := StatusCode(err)
	resp := errorResponse{Error: err.Error()}

	if code == http.StatusUnprocessableEntity {
		resp.Message = entity.CarrierRequiredMessage
	}
	if code >= http.StatusInternalServerError {
		h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		h.logger.Error("Request failed", "operation", operation, "error", err)
		resp.Error = http.StatusText(code)
	}
	return c.JSON(code, resp)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
