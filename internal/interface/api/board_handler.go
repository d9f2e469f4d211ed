package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/usecase"
)

type boardResponse struct {
	Columns []entity.Column       `json:"columns"`
	Total   int                   `json:"total"`
	Filters entity.FilterCriteria `json:"filters"`
}

// Board returns the six columns after applying the query filters
func (h *Handler) Board(c echo.Context) error {
	var criteria entity.FilterCriteria
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &criteria); err != nil {
		return badRequest(c, "invalid filter: "+err.Error())
	}

	board, err := h.workflow.ListByStatus(c.Request().Context())
	if err != nil {
		return h.respondError(c, "board", err)
	}
	board = usecase.ApplyFilters(board, criteria)

	return c.JSON(http.StatusOK, boardResponse{
		Columns: board.Columns(),
		Total:   board.Len(),
		Filters: criteria,
	})
}

// Statuses lists the board columns in order
func (h *Handler) Statuses(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"statuses": entity.AllStatuses()})
}

// Carriers lists the carrier roster for the assignment picker
func (h *Handler) Carriers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"carriers": h.workflow.Carriers()})
}
