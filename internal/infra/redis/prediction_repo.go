package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"telegram-object-detection/internal/domain"
	"telegram-object-detection/internal/domain/model"
	"telegram-object-detection/internal/domain/ports/repository"
)

// Compile-time check
var _ repository.PredictionRepository = (*PredictionRepo)(nil)

// PredictionRepo reads prediction documents written by the detection worker.
// Each document is a JSON blob at <keyPrefix>:<prediction_id>.
type PredictionRepo struct {
	cli       RedisClient
	keyPrefix string
}

func NewPredictionRepo(cli RedisClient, keyPrefix string) *PredictionRepo {
	if keyPrefix == "" {
		keyPrefix = "prediction"
	}
	return &PredictionRepo{cli: cli, keyPrefix: keyPrefix}
}

func (r *PredictionRepo) FindByID(ctx context.Context, predictionID string) (*model.PredictionResult, error) {
	val, err := r.cli.Get(ctx, r.keyPrefix+":"+predictionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get prediction %s: %w", predictionID, err)
	}

	var res model.PredictionResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, fmt.Errorf("decode prediction %s: %w", predictionID, err)
	}
	if res.PredictionID == "" {
		res.PredictionID = predictionID
	}
	return &res, nil
}
