package usecase

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
	memrepo "dispatch-board-service/internal/interface/repository"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	shipments   repository.ShipmentRepository
	transitions repository.TransitionRepository
	metrics     *metrics.Metrics
	workflow    *DispatchWorkflow
}

func newFixture(t *testing.T, seed []entity.Shipment) *fixture {
	t.Helper()

	shipments, err := memrepo.NewMemoryShipmentRepository(seed)
	require.NoError(t, err)

	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	transitions := memrepo.NewMemoryTransitionRepository()
	w := NewDispatchWorkflow(shipments, transitions, []string{"Carrier A", "Carrier B"}, m, logger.NewNopLogger())
	w.now = func() time.Time { return fixedNow }

	return &fixture{shipments: shipments, transitions: transitions, metrics: m, workflow: w}
}

func availableShipment(id entity.ShipmentID) entity.Shipment {
	return entity.Shipment{
		ID:               id,
		PickupLocation:   "Chicago, IL",
		DeliveryLocation: "Dallas, TX",
		PickupDate:       "2024-03-15",
		DeliveryDate:     "2024-03-17",
		Customer:         "Acme Foods",
		Rate:             2000,
		Planner:          "Sarah Lee",
		DispatchStatus:   entity.StatusAvailable,
	}
}
