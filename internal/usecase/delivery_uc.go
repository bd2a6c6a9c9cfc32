package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain"
	"telegram-object-detection/internal/domain/model"
	"telegram-object-detection/internal/domain/ports/adapter"
	"telegram-object-detection/internal/domain/ports/repository"
	"telegram-object-detection/internal/infra/logging"
	"telegram-object-detection/internal/infra/metrics"
)

// Compile-time check
var _ DeliveryUseCase = (*deliveryUC)(nil)

// DeliveryUseCase relays a completed prediction back to the originating chat.
// Deliver returns an HTTP-style status for its synchronous caller; once the
// prediction is found, downstream failures are absorbed into chat replies and
// the status stays 200.
type DeliveryUseCase interface {
	Deliver(ctx context.Context, predictionID string) (status int, message string)
}

const (
	summaryHeader     = "🔍 Prediction Results:"
	replyNoObjects    = "No objects detected in the image."
	replyImageFetch   = "Sorry, there was an issue retrieving the image."
	replyImageMissing = "Sorry, I couldn't find the processed image."
)

type deliveryUC struct {
	predictions repository.PredictionRepository
	transport   adapter.ChatTransport
	store       adapter.ObjectStore
	log         *zerolog.Logger
}

func NewDeliveryUseCase(predictions repository.PredictionRepository, transport adapter.ChatTransport, store adapter.ObjectStore, logger *zerolog.Logger) *deliveryUC {
	return &deliveryUC{
		predictions: predictions,
		transport:   transport,
		store:       store,
		log:         logger,
	}
}

func (u *deliveryUC) Deliver(ctx context.Context, predictionID string) (int, string) {
	if strings.TrimSpace(predictionID) == "" {
		metrics.IncDelivery(http.StatusBadRequest)
		return http.StatusBadRequest, "Missing predictionId"
	}

	ctx = logging.WithPredictionID(ctx, predictionID)
	log := logging.With(ctx, u.log)
	defer logging.TraceDuration(log, "DeliveryUC.Deliver")()

	pred, err := u.predictions.FindByID(ctx, predictionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IncDelivery(http.StatusNotFound)
			return http.StatusNotFound, "Prediction not found"
		}
		log.Error().Err(err).Msg("prediction lookup")
		metrics.IncDelivery(http.StatusInternalServerError)
		return http.StatusInternalServerError, "Failed to look up prediction"
	}

	u.sendText(ctx, pred.ChatID, buildSummary(pred))
	u.deliverImage(ctx, pred, log)

	metrics.IncDelivery(http.StatusOK)
	return http.StatusOK, "Ok"
}

// deliverImage sends the annotated image, degrading every failure to a text
// apology so the overall delivery still succeeds.
func (u *deliveryUC) deliverImage(ctx context.Context, pred *model.PredictionResult, log *zerolog.Logger) {
	if pred.PredictedImgPath == "" {
		u.sendText(ctx, pred.ChatID, replyImageMissing)
		return
	}

	localPath, err := u.store.Download(ctx, pred.PredictedImgPath)
	if err != nil {
		log.Error().Err(err).Str("path", pred.PredictedImgPath).Msg("download result image")
		metrics.IncPhotoSendFailure()
		u.sendText(ctx, pred.ChatID, fmt.Sprintf("Sorry, there was an issue sending the processed image. Error: %v", err))
		return
	}
	if localPath == "" {
		metrics.IncPhotoSendFailure()
		u.sendText(ctx, pred.ChatID, replyImageFetch)
		return
	}
	defer os.Remove(localPath)

	if err := u.transport.SendPhoto(ctx, pred.ChatID, localPath); err != nil {
		log.Error().Err(err).Str("local_path", localPath).Msg("send result photo")
		metrics.IncPhotoSendFailure()
		u.sendText(ctx, pred.ChatID, fmt.Sprintf("Sorry, there was an issue sending the processed image. Error: %v", err))
	}
}

func buildSummary(pred *model.PredictionResult) string {
	if len(pred.Labels) == 0 {
		return replyNoObjects
	}
	sb := strings.Builder{}
	sb.WriteString(summaryHeader)
	sb.WriteString("\n")
	for _, obj := range pred.Labels {
		sb.WriteString(fmt.Sprintf("- %s\n", obj.Class))
	}
	return sb.String()
}

func (u *deliveryUC) sendText(ctx context.Context, chatID int64, text string) {
	if err := u.transport.SendText(ctx, chatID, text); err != nil {
		logging.With(ctx, u.log).Error().Err(err).Int64("chat_id", chatID).Msg("send result text")
	}
}
