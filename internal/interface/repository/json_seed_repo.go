package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
)

// JSONSeedRepository reads and writes a JSON array of shipments on disk
type JSONSeedRepository struct {
	path string
}

// NewJSONSeedRepository creates a seed source backed by the file at path
func NewJSONSeedRepository(path string) repository.SeedRepository {
	return &JSONSeedRepository{path: path}
}

// Load decodes the file in array order
func (r *JSONSeedRepository) Load(ctx context.Context) ([]entity.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var shipments []entity.Shipment
	if err := json.Unmarshal(data, &shipments); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", r.path, err)
	}
	return shipments, nil
}

// Save overwrites the file with shipments
func (r *JSONSeedRepository) Save(ctx context.Context, shipments []entity.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(shipments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode shipments: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}
