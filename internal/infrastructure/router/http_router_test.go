package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/interface/api"
	"dispatch-board-service/internal/interface/repository"
	"dispatch-board-service/internal/usecase"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	log := logger.NewNopLogger()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("dispatch_test", reg)

	shipments, err := repository.NewMemoryShipmentRepository(repository.SyntheticShipments())
	require.NoError(t, err)
	transitions := repository.NewMemoryTransitionRepository()

	workflow := usecase.NewDispatchWorkflow(shipments, transitions, []string{"Carrier A", "Carrier B", "Carrier C"}, m, log)
	customers := usecase.NewCustomerAggregator(shipments, m, log)
	details := usecase.NewShipmentDetailService(shipments)

	h := api.NewHandler(workflow, customers, details, shipments, m, log, "test")
	return NewHTTPRouter(h, m, reg, log)
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type columnBody struct {
	Status    string            `json:"status"`
	Count     int               `json:"count"`
	Shipments []entity.Shipment `json:"shipments"`
}

type boardBody struct {
	Columns []columnBody `json:"columns"`
	Total   int          `json:"total"`
}

type transitionBody struct {
	Request struct {
		ID              string `json:"id"`
		RequiresCarrier bool   `json:"requires_carrier"`
		SelectedCarrier string `json:"selected_carrier"`
	} `json:"request"`
	Prompt struct {
		Title          string   `json:"title"`
		Message        string   `json:"message"`
		CarrierLabel   string   `json:"carrier_label"`
		Carriers       []string `json:"carriers"`
		ConfirmEnabled bool     `json:"confirm_enabled"`
	} `json:"prompt"`
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, 14.0, health["shipments"])

	rec = do(t, e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dispatch_test_http_request_duration_seconds")
}

func TestBoardEndpoint(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantTotal int
	}{
		{"unfiltered", "/api/v1/board", http.StatusOK, 14},
		{"customer filter", "/api/v1/board?customer=acme", http.StatusOK, 4},
		{"combined filters", "/api/v1/board?planner=mike&carrier=carrier%20b", http.StatusOK, 3},
		{"date window", "/api/v1/board?pickup_date=2024-03-15&days=1", http.StatusOK, 3},
		{"very wide date window", "/api/v1/board?pickup_date=2024-03-15&days=200000000", http.StatusOK, 14},
		{"bad days", "/api/v1/board?days=soon", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}
			board := decode[boardBody](t, rec)
			require.Len(t, board.Columns, 6)
			assert.Equal(t, "Available", board.Columns[0].Status)
			assert.Equal(t, "DELIVERING", board.Columns[5].Status)
			assert.Equal(t, tt.wantTotal, board.Total)
		})
	}
}

func TestTransitionFlow_CarrierRequired(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/transitions",
		`{"shipment_id": 1, "source": "Available", "target": "Planned"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[transitionBody](t, rec)
	assert.True(t, created.Request.RequiresCarrier)
	assert.Equal(t, "Confirm Status Change", created.Prompt.Title)
	assert.Equal(t, `Are you sure you want to move this shipment from "Available" to "Planned"?`, created.Prompt.Message)
	assert.Equal(t, "Assign Carrier *", created.Prompt.CarrierLabel)
	assert.Equal(t, []string{"Carrier A", "Carrier B", "Carrier C"}, created.Prompt.Carriers)
	assert.False(t, created.Prompt.ConfirmEnabled)

	resolvePath := "/api/v1/transitions/" + created.Request.ID + "/resolve"

	rec = do(t, e, http.MethodPost, resolvePath, `{"confirmed": true}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	blocked := decode[map[string]any](t, rec)
	assert.Equal(t, "Please select a carrier", blocked["message"])

	rec = do(t, e, http.MethodPatch, "/api/v1/transitions/"+created.Request.ID+"/carrier", `{"carrier": "Carrier B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	selected := decode[transitionBody](t, rec)
	assert.True(t, selected.Prompt.ConfirmEnabled)
	assert.Equal(t, "Carrier B", selected.Request.SelectedCarrier)

	rec = do(t, e, http.MethodPost, resolvePath, `{"confirmed": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resolved := decode[struct {
		Applied  bool            `json:"applied"`
		Shipment entity.Shipment `json:"shipment"`
	}](t, rec)
	assert.True(t, resolved.Applied)
	assert.Equal(t, entity.StatusPlanned, resolved.Shipment.DispatchStatus)
	assert.Equal(t, "Carrier B", resolved.Shipment.Carrier)

	rec = do(t, e, http.MethodGet, "/api/v1/transitions/"+created.Request.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransitionFlow_NoopAndErrors(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"same column", `{"shipment_id": "7", "source": "PU TRACKING", "target": "pu tracking"}`, http.StatusNoContent},
		{"unknown status", `{"shipment_id": "7", "source": "PU TRACKING", "target": "Shipped"}`, http.StatusBadRequest},
		{"unknown shipment", `{"shipment_id": "700", "source": "PU TRACKING", "target": "LOADING"}`, http.StatusNotFound},
		{"wrong source", `{"shipment_id": "7", "source": "Available", "target": "LOADING"}`, http.StatusConflict},
		{"missing id", `{"source": "Available", "target": "LOADING"}`, http.StatusBadRequest},
		{"bad json", `{"shipment_id": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/v1/transitions", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestTransitionFlow_Cancel(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/transitions",
		`{"shipment_id": "7", "source": "PU TRACKING", "target": "LOADING"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[transitionBody](t, rec)
	assert.Empty(t, created.Prompt.CarrierLabel)
	assert.True(t, created.Prompt.ConfirmEnabled)

	rec = do(t, e, http.MethodPost, "/api/v1/transitions/"+created.Request.ID+"/resolve", `{"confirmed": false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"applied": false}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/shipments/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[entity.ShipmentDetail](t, rec)
	assert.Equal(t, entity.StatusPUTracking, detail.DispatchStatus)
}

func TestShipmentEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/shipments/8", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[entity.ShipmentDetail](t, rec)
	assert.Equal(t, -90.0, detail.Pricing.Margin)
	assert.Equal(t, "Standard Terms", detail.Pricing.PaymentTerms)
	assert.Equal(t, []string{"dispatch_status"}, detail.EditableFields)

	rec = do(t, e, http.MethodGet, "/api/v1/shipments/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPatch, "/api/v1/shipments/8/status", `{"dispatch_status": "del tracking"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[entity.Shipment](t, rec)
	assert.Equal(t, entity.StatusDelTracking, updated.DispatchStatus)

	rec = do(t, e, http.MethodPatch, "/api/v1/shipments/8/status", `{"dispatch_status": "Shipped"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPatch, "/api/v1/shipments/2/status", `{"dispatch_status": "Planned"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, e, http.MethodPut, "/api/v1/shipments/2",
		`{"id": 2, "customer": "Blue Ridge Supply", "rate": 1400, "carrier": "Carrier C", "dispatch_status": "Planned"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	replaced := decode[entity.Shipment](t, rec)
	assert.Equal(t, "Carrier C", replaced.Carrier)
	assert.Equal(t, 1400.0, replaced.Rate)
	assert.Empty(t, replaced.PickupLocation, "update replaces wholesale")

	rec = do(t, e, http.MethodPut, "/api/v1/shipments/2", `{"id": "3", "dispatch_status": "Planned", "carrier": "Carrier A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/customers?sort=totalSpent&direction=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Customers []entity.Customer `json:"customers"`
		Total     int               `json:"total"`
	}](t, rec)
	require.Equal(t, 5, body.Total)
	assert.Equal(t, "Acme Foods", body.Customers[0].Name)
	assert.Equal(t, 10300.0, body.Customers[0].TotalSpent)
	assert.Equal(t, "Acme Foods", body.Customers[0].Profile.Name)
	assert.Equal(t, "53' Reefer", body.Customers[0].Profile.DefaultEquipment)
	assert.Equal(t, "Pacific Produce", body.Customers[4].Name)

	rec = do(t, e, http.MethodGet, "/api/v1/customers?search=zzz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customers": [], "total": 0}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/customers?sort=rating", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/customers?direction=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/customers/Pacific%20Produce/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[entity.CustomerProfile](t, rec)
	assert.Equal(t, "Pacific Produce", profile.Name)
	assert.Equal(t, "53' Reefer", profile.DefaultEquipment)

	rec = do(t, e, http.MethodGet, "/api/v1/customers/Nobody/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusesAndCarriers(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/statuses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statuses": ["Available", "Planned", "PU TRACKING", "LOADING", "DEL TRACKING", "DELIVERING"]}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/carriers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"carriers": ["Carrier A", "Carrier B", "Carrier C"]}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
