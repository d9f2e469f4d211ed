package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

// DispatchWorkflow owns the board: grouped views, the drag confirmation step and
// the carrier requirement on Planned.
type DispatchWorkflow struct {
	shipmentRepo   repository.ShipmentRepository
	transitionRepo repository.TransitionRepository
	carriers       []string
	metrics        *metrics.Metrics
	logger         logger.Logger

	now   func() time.Time
	newID func() string
}

// NewDispatchWorkflow creates a new dispatch workflow
func NewDispatchWorkflow(
	shipmentRepo repository.ShipmentRepository,
	transitionRepo repository.TransitionRepository,
	carriers []string,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DispatchWorkflow {
	roster := make([]string, len(carriers))
	copy(roster, carriers)
	return &DispatchWorkflow{
		shipmentRepo:   shipmentRepo,
		transitionRepo: transitionRepo,
		carriers:       roster,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// Carriers returns the carrier roster offered by the confirmation dialog
func (w *DispatchWorkflow) Carriers() []string {
	out := make([]string, len(w.carriers))
	copy(out, w.carriers)
	return out
}

// ListByStatus groups the current collection into board columns
func (w *DispatchWorkflow) ListByStatus(ctx context.Context) (entity.Board, error) {
	shipments, err := w.shipmentRepo.List(ctx)
	if err != nil {
		w.metrics.ErrorsCount.WithLabelValues("list_by_status").Inc()
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return GroupByStatus(shipments), nil
}

// RequestTransition turns a drop onto another column into a pending request.
// Dropping onto the same column is a no-op and returns nil without error.
func (w *DispatchWorkflow) RequestTransition(ctx context.Context, id entity.ShipmentID, source, target entity.DispatchStatus) (*entity.TransitionRequest, error) {
	if source == target {
		return nil, nil
	}

	rule, err := entity.RuleFor(source, target)
	if err != nil {
		return nil, err
	}

	shipment, err := w.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment.DispatchStatus != source {
		return nil, fmt.Errorf("%w: shipment %s is %q, not %q", entity.ErrStatusMismatch, id, shipment.DispatchStatus, source)
	}

	// Planned always needs a carrier, whichever column the shipment leaves
	requiresCarrier := rule.RequiresCarrier || (target == entity.StatusPlanned && !shipment.HasCarrier())

	request := &entity.TransitionRequest{
		ID:              w.newID(),
		ShipmentID:      id,
		SourceStatus:    rule.From,
		TargetStatus:    rule.To,
		RequiresCarrier: requiresCarrier,
		CreatedAt:       w.now().UTC(),
	}
	if err := w.transitionRepo.Save(ctx, request); err != nil {
		w.metrics.ErrorsCount.WithLabelValues("request_transition").Inc()
		return nil, fmt.Errorf("failed to store transition request: %w", err)
	}

	w.metrics.TransitionsRequested.Inc()
	w.logger.Info("Transition requested",
		"requestId", request.ID,
		"shipmentId", id,
		"source", source,
		"target", target,
		"requiresCarrier", requiresCarrier)

	return request, nil
}

// PendingTransition returns a pending request by id
func (w *DispatchWorkflow) PendingTransition(ctx context.Context, requestID string) (*entity.TransitionRequest, error) {
	return w.transitionRepo.FindByID(ctx, requestID)
}

// SelectCarrier records the carrier picked in the dialog on a pending request
func (w *DispatchWorkflow) SelectCarrier(ctx context.Context, requestID, carrier string) (*entity.TransitionRequest, error) {
	request, err := w.transitionRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	request.SelectedCarrier = strings.TrimSpace(carrier)
	if err := w.transitionRepo.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to store transition request: %w", err)
	}
	return request, nil
}

// ResolveTransition confirms or cancels a pending request.
//
// Cancelling discards the request and returns nil. Confirming a move that needs
// a carrier without one returns ErrCarrierRequired and keeps the request pending.
// A non-empty carrier argument overrides the one selected earlier.
func (w *DispatchWorkflow) ResolveTransition(ctx context.Context, requestID string, confirmed bool, carrier string) (*entity.Shipment, error) {
	request, err := w.transitionRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		if err := w.transitionRepo.Delete(ctx, requestID); err != nil {
			return nil, fmt.Errorf("failed to discard transition request: %w", err)
		}
		w.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeCancelled).Inc()
		w.logger.Info("Transition cancelled", "requestId", requestID, "shipmentId", request.ShipmentID)
		return nil, nil
	}

	if c := strings.TrimSpace(carrier); c != "" {
		request.SelectedCarrier = c
	}
	if !request.CanConfirm() {
		return nil, w.blockTransition(requestID, request)
	}

	updated, err := w.shipmentRepo.Update(ctx, request.ShipmentID, func(s *entity.Shipment) error {
		if s.DispatchStatus != request.SourceStatus {
			return fmt.Errorf("%w: shipment %s moved to %q", entity.ErrStatusMismatch, s.ID, s.DispatchStatus)
		}
		s.DispatchStatus = request.TargetStatus
		if request.RequiresCarrier {
			s.Carrier = request.SelectedCarrier
		}
		if s.DispatchStatus == entity.StatusPlanned && !s.HasCarrier() {
			return entity.ErrCarrierRequired
		}
		return nil
	})
	if errors.Is(err, entity.ErrCarrierRequired) {
		// the carrier was cleared after the request was made; ask for one
		request.RequiresCarrier = true
		if saveErr := w.transitionRepo.Save(ctx, request); saveErr != nil {
			return nil, fmt.Errorf("failed to store transition request: %w", saveErr)
		}
		return nil, w.blockTransition(requestID, request)
	}
	if err != nil {
		// a stale or orphaned request can never be applied
		_ = w.transitionRepo.Delete(ctx, requestID)
		w.metrics.ErrorsCount.WithLabelValues("resolve_transition").Inc()
		w.logger.Error("Failed to apply transition", "requestId", requestID, "error", err)
		return nil, err
	}

	if err := w.transitionRepo.Delete(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to discard transition request: %w", err)
	}

	w.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeConfirmed).Inc()
	w.logger.Info("Transition confirmed",
		"requestId", requestID,
		"shipmentId", updated.ID,
		"status", updated.DispatchStatus,
		"carrier", updated.Carrier)

	return updated, nil
}

func (w *DispatchWorkflow) blockTransition(requestID string, request *entity.TransitionRequest) error {
	w.metrics.TransitionsResolved.WithLabelValues(metrics.OutcomeBlocked).Inc()
	w.logger.Warn("Transition blocked",
		"requestId", requestID,
		"shipmentId", request.ShipmentID,
		"target", request.TargetStatus,
		"reason", entity.CarrierRequiredMessage)
	return fmt.Errorf("%w: %s", entity.ErrCarrierRequired, entity.CarrierRequiredMessage)
}

// UpdateShipment replaces the stored shipment with the same id wholesale
func (w *DispatchWorkflow) UpdateShipment(ctx context.Context, record entity.Shipment) (*entity.Shipment, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	updated, err := w.shipmentRepo.Update(ctx, record.ID, func(current *entity.Shipment) error {
		if record.DispatchStatus == entity.StatusPlanned &&
			current.DispatchStatus != entity.StatusPlanned &&
			!record.HasCarrier() {
			return fmt.Errorf("%w: %s", entity.ErrCarrierRequired, entity.CarrierRequiredMessage)
		}
		*current = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.metrics.ShipmentUpdates.Inc()
	w.logger.Info("Shipment updated", "shipmentId", updated.ID, "status", updated.DispatchStatus)
	return updated, nil
}

// ChangeStatus sets only the dispatch status of a shipment
func (w *DispatchWorkflow) ChangeStatus(ctx context.Context, id entity.ShipmentID, status entity.DispatchStatus) (*entity.Shipment, error) {
	current, err := w.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record := *current
	record.DispatchStatus = status
	return w.UpdateShipment(ctx, record)
}
