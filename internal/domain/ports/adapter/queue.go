package adapter

import (
	"context"

	"telegram-object-detection/internal/domain/model"
)

// JobQueue publishes detection jobs for the external worker.
// Delivery is at-least-once on the consumer side; no ordering guarantee.
type JobQueue interface {
	Publish(ctx context.Context, job *model.PendingJob) (messageID string, err error)
}
