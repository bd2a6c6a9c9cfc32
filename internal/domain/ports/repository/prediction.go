package repository

import (
	"context"

	"telegram-object-detection/internal/domain/model"
)

// PredictionRepository looks up completed prediction documents by id.
// Returns domain.ErrNotFound when no document exists for the id.
type PredictionRepository interface {
	FindByID(ctx context.Context, predictionID string) (*model.PredictionResult, error)
}
