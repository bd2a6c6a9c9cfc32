package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain/model"
	"telegram-object-detection/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.JobQueue = (*SQSJobQueue)(nil)

func NewSQSClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg)
}

// SQSJobQueue publishes pending detection jobs to an SQS queue as JSON.
type SQSJobQueue struct {
	client   *sqs.Client
	queueURL string
	log      *zerolog.Logger
}

func NewSQSJobQueue(client *sqs.Client, queueURL string, logger *zerolog.Logger) *SQSJobQueue {
	return &SQSJobQueue{client: client, queueURL: queueURL, log: logger}
}

func (q *SQSJobQueue) Publish(ctx context.Context, job *model.PendingJob) (string, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return "", fmt.Errorf("send message to sqs: %w", err)
	}

	msgID := aws.ToString(out.MessageId)
	q.log.Debug().Str("message_id", msgID).Str("photo_id", job.PhotoID).Msg("sqs message sent")
	return msgID, nil
}
