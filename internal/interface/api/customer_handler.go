package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"dispatch-board-service/internal/domain/entity"
)

type customersResponse struct {
	Customers []entity.Customer `json:"customers"`
	Total     int               `json:"total"`
}

// ListCustomers returns the aggregated customer table
func (h *Handler) ListCustomers(c echo.Context) error {
	query := entity.CustomerQuery{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Sort:   entity.CustomerSortField(c.QueryParam("sort")),
	}
	switch strings.ToLower(c.QueryParam("direction")) {
	case "", "asc":
	case "desc":
		query.Descending = true
	default:
		return h.respondError(c, "list_customers",
			fmt.Errorf("%w: direction must be asc or desc", entity.ErrInvalidQuery))
	}

	customers, err := h.customers.ListCustomers(c.Request().Context(), query)
	if err != nil {
		return h.respondError(c, "list_customers", err)
	}
	if customers == nil {
		customers = []entity.Customer{}
	}
	return c.JSON(http.StatusOK, customersResponse{Customers: customers, Total: len(customers)})
}

// CustomerProfile returns the picker defaults for one customer
func (h *Handler) CustomerProfile(c echo.Context) error {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	profile, err := h.customers.Profile(c.Request().Context(), name)
	if err != nil {
		return h.respondError(c, "customer_profile", err)
	}
	return c.JSON(http.StatusOK, profile)
}
