package repository

import (
	"context"

	"dispatch-board-service/internal/domain/entity"
)

// SeedRepository imports the initial shipment collection and can write one out for later imports
type SeedRepository interface {
	Load(ctx context.Context) ([]entity.Shipment, error)
	Save(ctx context.Context, shipments []entity.Shipment) error
}
