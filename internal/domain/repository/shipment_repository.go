package repository

import (
	"context"

	"dispatch-board-service/internal/domain/entity"
)

// ShipmentRepository defines the interface for the in-memory shipment collection
type ShipmentRepository interface {
	// List returns every shipment in collection order
	List(ctx context.Context) ([]entity.Shipment, error)
	FindByID(ctx context.Context, id entity.ShipmentID) (*entity.Shipment, error)
	// Update applies fn to a copy of the shipment and stores the result only if fn succeeds.
	// The read-modify-write happens under one lock.
	Update(ctx context.Context, id entity.ShipmentID, fn func(*entity.Shipment) error) (*entity.Shipment, error)
	Count(ctx context.Context) (int, error)
}
