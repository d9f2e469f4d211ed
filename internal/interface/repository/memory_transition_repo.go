package repository

import (
	"context"
	"fmt"
	"sync"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
)

// MemoryTransitionRepository holds pending transition requests
type MemoryTransitionRepository struct {
	mu       sync.RWMutex
	requests map[string]entity.TransitionRequest
}

// NewMemoryTransitionRepository creates an empty pending-request store
func NewMemoryTransitionRepository() repository.TransitionRepository {
	return &MemoryTransitionRepository{
		requests: make(map[string]entity.TransitionRequest),
	}
}

// Save inserts or overwrites a pending request
func (r *MemoryTransitionRepository) Save(ctx context.Context, request *entity.TransitionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = *request
	return nil
}

// FindByID returns a copy of the pending request
func (r *MemoryTransitionRepository) FindByID(ctx context.Context, id string) (*entity.TransitionRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrTransitionNotFound, id)
	}
	return &req, nil
}

// Delete removes a pending request; deleting an unknown id is not an error
func (r *MemoryTransitionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, id)
	return nil
}
