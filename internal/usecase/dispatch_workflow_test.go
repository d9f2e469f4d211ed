package usecase

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-board-service/internal/domain/entity"
	memrepo "dispatch-board-service/internal/interface/repository"
	"dispatch-board-service/pkg/metrics"
)

func TestResolveTransition_PlannedRequiresCarrier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Shipment{availableShipment("42")})

	req, err := f.workflow.RequestTransition(ctx, "42", entity.StatusAvailable, entity.StatusPlanned)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.True(t, req.RequiresCarrier)
	assert.False(t, req.CanConfirm())
	assert.Equal(t, entity.CarrierRequiredMessage, req.ValidationMessage())
	assert.Equal(t, fixedNow, req.CreatedAt)

	// confirming without a carrier is blocked and nothing changes
	_, err = f.workflow.ResolveTransition(ctx, req.ID, true, "  ")
	require.ErrorIs(t, err, entity.ErrCarrierRequired)

	stored, err := f.shipments.FindByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, stored.DispatchStatus)
	assert.Empty(t, stored.Carrier)

	pending, err := f.workflow.PendingTransition(ctx, req.ID)
	require.NoError(t, err, "blocked request stays pending")
	assert.Equal(t, req.ID, pending.ID)

	updated, err := f.workflow.ResolveTransition(ctx, req.ID, true, "Carrier B")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlanned, updated.DispatchStatus)
	assert.Equal(t, "Carrier B", updated.Carrier)

	_, err = f.workflow.PendingTransition(ctx, req.ID)
	assert.ErrorIs(t, err, entity.ErrTransitionNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TransitionsRequested))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeBlocked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeConfirmed)))
}

func TestResolveTransition_UsesSelectedCarrier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Shipment{availableShipment("42")})

	req, err := f.workflow.RequestTransition(ctx, "42", entity.StatusAvailable, entity.StatusPlanned)
	require.NoError(t, err)

	selected, err := f.workflow.SelectCarrier(ctx, req.ID, " Carrier A ")
	require.NoError(t, err)
	assert.Equal(t, "Carrier A", selected.SelectedCarrier)
	assert.True(t, selected.CanConfirm())

	updated, err := f.workflow.ResolveTransition(ctx, req.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, "Carrier A", updated.Carrier)
}

func TestResolveTransition_UnguardedMoveKeepsCarrier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	req, err := f.workflow.RequestTransition(ctx, "7", entity.StatusPUTracking, entity.StatusLoading)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.False(t, req.RequiresCarrier)
	assert.True(t, req.CanConfirm())

	before, err := f.shipments.List(ctx)
	require.NoError(t, err)

	updated, err := f.workflow.ResolveTransition(ctx, req.ID, true, "Carrier D")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLoading, updated.DispatchStatus)
	assert.Equal(t, "Carrier A", updated.Carrier, "carrier only written on guarded moves")

	after, err := f.shipments.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		if before[i].ID == "7" {
			continue
		}
		assert.Equal(t, before[i], after[i], "shipment %s must be untouched", before[i].ID)
	}
}

func TestRequestTransition_SameColumnIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	req, err := f.workflow.RequestTransition(ctx, "3", entity.StatusPlanned, entity.StatusPlanned)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.TransitionsRequested))

	stored, err := f.shipments.FindByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlanned, stored.DispatchStatus)
}

func TestRequestTransition_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      entity.ShipmentID
		source  entity.DispatchStatus
		target  entity.DispatchStatus
		wantErr error
	}{
		{"unknown target", "1", entity.StatusAvailable, "Shipped", entity.ErrInvalidStatus},
		{"unknown source", "1", "Lost", entity.StatusPlanned, entity.ErrInvalidStatus},
		{"unknown shipment", "999", entity.StatusAvailable, entity.StatusPlanned, entity.ErrShipmentNotFound},
		{"stale source", "1", entity.StatusLoading, entity.StatusDelivering, entity.ErrStatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, memrepo.SyntheticShipments())
			req, err := f.workflow.RequestTransition(context.Background(), tt.id, tt.source, tt.target)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, req)
		})
	}
}

func TestResolveTransition_CancelLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	before, err := f.shipments.List(ctx)
	require.NoError(t, err)

	req, err := f.workflow.RequestTransition(ctx, "1", entity.StatusAvailable, entity.StatusPlanned)
	require.NoError(t, err)

	updated, err := f.workflow.ResolveTransition(ctx, req.ID, false, "Carrier B")
	require.NoError(t, err)
	assert.Nil(t, updated)

	after, err := f.shipments.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = f.workflow.PendingTransition(ctx, req.ID)
	assert.ErrorIs(t, err, entity.ErrTransitionNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeCancelled)))
}

func TestResolveTransition_StaleRequestIsDiscarded(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	req, err := f.workflow.RequestTransition(ctx, "9", entity.StatusLoading, entity.StatusDelTracking)
	require.NoError(t, err)

	_, err = f.workflow.ChangeStatus(ctx, "9", entity.StatusDelivering)
	require.NoError(t, err)

	_, err = f.workflow.ResolveTransition(ctx, req.ID, true, "")
	require.ErrorIs(t, err, entity.ErrStatusMismatch)

	stored, err := f.shipments.FindByID(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivering, stored.DispatchStatus)

	_, err = f.workflow.PendingTransition(ctx, req.ID)
	assert.ErrorIs(t, err, entity.ErrTransitionNotFound)
}

func TestResolveTransition_UnknownRequest(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.workflow.ResolveTransition(context.Background(), "missing", true, "Carrier A")
	assert.ErrorIs(t, err, entity.ErrTransitionNotFound)
}

func TestUpdateShipment(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *entity.Shipment)
		wantErr error
	}{
		{
			name:   "replaces record wholesale",
			mutate: func(s *entity.Shipment) { s.Rate = 3000; s.DriverName = "Jo Reyes" },
		},
		{
			name:    "rejects invalid status",
			mutate:  func(s *entity.Shipment) { s.DispatchStatus = "Shipped" },
			wantErr: entity.ErrInvalidStatus,
		},
		{
			name:    "rejects unknown id",
			mutate:  func(s *entity.Shipment) { s.ID = "404" },
			wantErr: entity.ErrShipmentNotFound,
		},
		{
			name:    "planned without carrier",
			mutate:  func(s *entity.Shipment) { s.DispatchStatus = entity.StatusPlanned },
			wantErr: entity.ErrCarrierRequired,
		},
		{
			name: "planned with carrier",
			mutate: func(s *entity.Shipment) {
				s.DispatchStatus = entity.StatusPlanned
				s.Carrier = "Carrier C"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, []entity.Shipment{availableShipment("42")})

			record := availableShipment("42")
			tt.mutate(&record)

			updated, err := f.workflow.UpdateShipment(ctx, record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, findErr := f.shipments.FindByID(ctx, "42")
				require.NoError(t, findErr)
				assert.Equal(t, availableShipment("42"), *stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, record, *updated)
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ShipmentUpdates))
		})
	}
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	updated, err := f.workflow.ChangeStatus(ctx, "4", entity.StatusPUTracking)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPUTracking, updated.DispatchStatus)
	assert.Equal(t, "Carrier C", updated.Carrier)

	// moving back into Planned is fine once a carrier is assigned
	_, err = f.workflow.ChangeStatus(ctx, "4", entity.StatusPlanned)
	require.NoError(t, err)

	_, err = f.workflow.ChangeStatus(ctx, "2", entity.StatusPlanned)
	assert.ErrorIs(t, err, entity.ErrCarrierRequired)

	_, err = f.workflow.ChangeStatus(ctx, "2", "nowhere")
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}

func TestListByStatus(t *testing.T) {
	f := newFixture(t, memrepo.SyntheticShipments())

	board, err := f.workflow.ListByStatus(context.Background())
	require.NoError(t, err)

	want := map[entity.DispatchStatus][]entity.ShipmentID{
		entity.StatusAvailable:   {"1", "2", "14"},
		entity.StatusPlanned:     {"3", "4"},
		entity.StatusPUTracking:  {"5", "6", "7"},
		entity.StatusLoading:     {"8", "9"},
		entity.StatusDelTracking: {"10", "11"},
		entity.StatusDelivering:  {"12", "13"},
	}
	require.Len(t, board, len(want))
	for status, ids := range want {
		var got []entity.ShipmentID
		for _, s := range board[status] {
			got = append(got, s.ID)
		}
		assert.Equal(t, ids, got, status.String())
	}
}

func TestCarriersReturnsCopy(t *testing.T) {
	f := newFixture(t, nil)
	roster := f.workflow.Carriers()
	roster[0] = "changed"
	assert.Equal(t, []string{"Carrier A", "Carrier B"}, f.workflow.Carriers())
}

func TestResolveTransition_IntoPlannedFromOtherColumnsNeedsCarrier(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Shipment{availableShipment("42")})

	toLoading, err := f.workflow.RequestTransition(ctx, "42", entity.StatusAvailable, entity.StatusLoading)
	require.NoError(t, err)
	assert.False(t, toLoading.RequiresCarrier)
	_, err = f.workflow.ResolveTransition(ctx, toLoading.ID, true, "")
	require.NoError(t, err)

	toPlanned, err := f.workflow.RequestTransition(ctx, "42", entity.StatusLoading, entity.StatusPlanned)
	require.NoError(t, err)
	assert.True(t, toPlanned.RequiresCarrier, "carrier picker shown for a shipment without one")
	assert.False(t, toPlanned.CanConfirm())

	_, err = f.workflow.ResolveTransition(ctx, toPlanned.ID, true, "")
	require.ErrorIs(t, err, entity.ErrCarrierRequired)

	stored, err := f.shipments.FindByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLoading, stored.DispatchStatus)
	assert.Empty(t, stored.Carrier)

	_, err = f.workflow.PendingTransition(ctx, toPlanned.ID)
	require.NoError(t, err, "blocked request stays pending")

	updated, err := f.workflow.ResolveTransition(ctx, toPlanned.ID, true, "Carrier A")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlanned, updated.DispatchStatus)
	assert.Equal(t, "Carrier A", updated.Carrier)
}

func TestRequestTransition_IntoPlannedWithCarrierIsUnguarded(t *testing.T) {
	f := newFixture(t, memrepo.SyntheticShipments())

	req, err := f.workflow.RequestTransition(context.Background(), "8", entity.StatusLoading, entity.StatusPlanned)
	require.NoError(t, err)
	assert.False(t, req.RequiresCarrier)

	updated, err := f.workflow.ResolveTransition(context.Background(), req.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, "Carrier B", updated.Carrier)
}

func TestResolveTransition_CarrierClearedAfterRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, memrepo.SyntheticShipments())

	req, err := f.workflow.RequestTransition(ctx, "9", entity.StatusLoading, entity.StatusPlanned)
	require.NoError(t, err)
	require.False(t, req.RequiresCarrier)

	_, err = f.shipments.Update(ctx, "9", func(s *entity.Shipment) error {
		s.Carrier = ""
		return nil
	})
	require.NoError(t, err)

	_, err = f.workflow.ResolveTransition(ctx, req.ID, true, "")
	require.ErrorIs(t, err, entity.ErrCarrierRequired)

	pending, err := f.workflow.PendingTransition(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, pending.RequiresCarrier)

	stored, err := f.shipments.FindByID(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLoading, stored.DispatchStatus)
}
