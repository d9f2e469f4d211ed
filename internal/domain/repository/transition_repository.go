package repository

import (
	"context"

	"dispatch-board-service/internal/domain/entity"
)

// TransitionRepository holds pending drag confirmations until they are resolved
type TransitionRepository interface {
	Save(ctx context.Context, request *entity.TransitionRequest) error
	FindByID(ctx context.Context, id string) (*entity.TransitionRequest, error)
	Delete(ctx context.Context, id string) error
}
