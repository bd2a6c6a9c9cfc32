package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain/model"
	"telegram-object-detection/internal/domain/ports/adapter"
	"telegram-object-detection/internal/infra/logging"
	"telegram-object-detection/internal/usecase"
)

// MessageHandler processes one inbound chat message. The concrete handler is
// chosen at construction time: DefaultHandler for a plain echo bot,
// ObjectDetectionHandler for the photo submission pipeline.
type MessageHandler interface {
	Handle(ctx context.Context, msg *model.ChatMessage)
}

var (
	_ MessageHandler = (*DefaultHandler)(nil)
	_ MessageHandler = (*ObjectDetectionHandler)(nil)
)

// DefaultHandler echoes the incoming text back to the sender.
type DefaultHandler struct {
	transport adapter.ChatTransport
	log       *zerolog.Logger
}

func NewDefaultHandler(transport adapter.ChatTransport, logger *zerolog.Logger) *DefaultHandler {
	return &DefaultHandler{transport: transport, log: logger}
}

func (h *DefaultHandler) Handle(ctx context.Context, msg *model.ChatMessage) {
	logging.With(ctx, h.log).Info().Int64("chat_id", msg.ChatID).Msg("incoming message")
	reply := fmt.Sprintf("Your original message: %s", msg.Text)
	if err := h.transport.SendText(ctx, msg.ChatID, reply); err != nil {
		logging.With(ctx, h.log).Error().Err(err).Int64("chat_id", msg.ChatID).Msg("send echo reply")
	}
}

// ObjectDetectionHandler routes every message into the submission pipeline.
type ObjectDetectionHandler struct {
	submission usecase.SubmissionUseCase
	log        *zerolog.Logger
}

func NewObjectDetectionHandler(submission usecase.SubmissionUseCase, logger *zerolog.Logger) *ObjectDetectionHandler {
	return &ObjectDetectionHandler{submission: submission, log: logger}
}

func (h *ObjectDetectionHandler) Handle(ctx context.Context, msg *model.ChatMessage) {
	logging.With(ctx, h.log).Info().Int64("chat_id", msg.ChatID).Bool("photo", msg.HasPhoto()).Msg("incoming message")
	h.submission.Submit(ctx, msg)
}
