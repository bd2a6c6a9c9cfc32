package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain/model"
	"telegram-object-detection/internal/domain/ports/adapter"
	"telegram-object-detection/internal/infra/logging"
	"telegram-object-detection/internal/infra/metrics"
)

// Compile-time check
var _ SubmissionUseCase = (*submissionUC)(nil)

// SubmissionUseCase accepts a user photo, stores it durably and enqueues a
// detection job. Submit never fails the caller: every failure degrades to a
// user-visible text reply.
type SubmissionUseCase interface {
	Submit(ctx context.Context, msg *model.ChatMessage)
}

const (
	replySendPhoto       = "Please send a photo."
	replyProcessing      = "Your image is being processed. Please wait..."
	replyUploadFailed    = "Failed to upload your image. Please try again later."
	replyProcessingError = "There was an error processing your image."
)

type submissionUC struct {
	transport adapter.ChatTransport
	store     adapter.ObjectStore
	queue     adapter.JobQueue
	keyPrefix string
	log       *zerolog.Logger
}

func NewSubmissionUseCase(transport adapter.ChatTransport, store adapter.ObjectStore, queue adapter.JobQueue, keyPrefix string, logger *zerolog.Logger) *submissionUC {
	return &submissionUC{
		transport: transport,
		store:     store,
		queue:     queue,
		keyPrefix: keyPrefix,
		log:       logger,
	}
}

func (u *submissionUC) Submit(ctx context.Context, msg *model.ChatMessage) {
	ctx = logging.WithChatID(ctx, msg.ChatID)
	log := logging.With(ctx, u.log)
	defer logging.TraceDuration(log, "SubmissionUC.Submit")()

	if !msg.HasPhoto() {
		metrics.IncSubmission("no_photo")
		u.reply(ctx, msg.ChatID, replySendPhoto)
		return
	}

	photo := msg.LargestPhoto()
	localPath, err := u.transport.DownloadPhoto(ctx, photo.FileID)
	if err != nil {
		log.Error().Err(err).Str("file_id", photo.FileID).Msg("download user photo")
		metrics.IncSubmission("error")
		u.reply(ctx, msg.ChatID, replyProcessingError)
		return
	}
	defer os.Remove(localPath)

	key := u.keyPrefix + filepath.Base(localPath)
	remoteURI, err := u.store.Upload(ctx, localPath, key)
	if err != nil {
		// Upload failure is terminal: the job must never reference a blob
		// that was not stored.
		log.Error().Err(err).Str("key", key).Msg("upload photo")
		metrics.IncSubmission("upload_failed")
		u.reply(ctx, msg.ChatID, replyUploadFailed)
		return
	}

	job := &model.PendingJob{
		PhotoID:  photo.FileID,
		FilePath: remoteURI,
		ChatID:   msg.ChatID,
	}
	if msgID, err := u.queue.Publish(ctx, job); err != nil {
		// Publish failures are logged only; the user still gets the
		// processing acknowledgment. Known gap kept as-is.
		log.Error().Err(err).Str("photo_id", job.PhotoID).Msg("publish job")
		metrics.IncQueuePublishFailure()
	} else {
		log.Info().Str("photo_id", job.PhotoID).Str("message_id", msgID).Str("file_path", remoteURI).Msg("job published")
	}

	metrics.IncSubmission("accepted")
	u.reply(ctx, msg.ChatID, replyProcessing)
}

func (u *submissionUC) reply(ctx context.Context, chatID int64, text string) {
	if err := u.transport.SendText(ctx, chatID, text); err != nil {
		logging.With(ctx, u.log).Error().Err(err).Msg("send reply")
	}
}
