package repository

import (
	"context"
	"fmt"
	"sync"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
)

// MemoryShipmentRepository keeps the shipment collection in process memory.
// Insertion order is preserved so board columns keep their relative order.
type MemoryShipmentRepository struct {
	mu        sync.RWMutex
	order     []entity.ShipmentID
	shipments map[entity.ShipmentID]entity.Shipment
}

// NewMemoryShipmentRepository creates a repository seeded with shipments.
// Seeds must validate and carry unique ids.
func NewMemoryShipmentRepository(seed []entity.Shipment) (repository.ShipmentRepository, error) {
	r := &MemoryShipmentRepository{
		order:     make([]entity.ShipmentID, 0, len(seed)),
		shipments: make(map[entity.ShipmentID]entity.Shipment, len(seed)),
	}
	for _, s := range seed {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.shipments[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", entity.ErrInvalidShipment, s.ID)
		}
		r.order = append(r.order, s.ID)
		r.shipments[s.ID] = s
	}
	return r, nil
}

// List returns a copy of every shipment in collection order
func (r *MemoryShipmentRepository) List(ctx context.Context) ([]entity.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Shipment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.shipments[id])
	}
	return out, nil
}

// FindByID returns a copy of the shipment with the given id
func (r *MemoryShipmentRepository) FindByID(ctx context.Context, id entity.ShipmentID) (*entity.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shipments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrShipmentNotFound, id)
	}
	return &s, nil
}

// Update runs fn on a copy under the write lock and commits the copy when fn returns nil
func (r *MemoryShipmentRepository) Update(ctx context.Context, id entity.ShipmentID, fn func(*entity.Shipment) error) (*entity.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.shipments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrShipmentNotFound, id)
	}
	next := current
	if err := fn(&next); err != nil {
		return nil, err
	}
	// identity is fixed
	next.ID = id
	r.shipments[id] = next
	return &next, nil
}

// Count returns the number of stored shipments
func (r *MemoryShipmentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
