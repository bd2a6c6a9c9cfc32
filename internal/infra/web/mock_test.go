package web

import (
	"context"

	"telegram-object-detection/internal/domain/model"
)

// fakeMessageHandler records handled messages.
type fakeMessageHandler struct {
	msgs []*model.ChatMessage
}

func (f *fakeMessageHandler) Handle(ctx context.Context, msg *model.ChatMessage) {
	f.msgs = append(f.msgs, msg)
}

// fakeDelivery returns a configured status and records requested ids.
type fakeDelivery struct {
	status  int
	message string
	ids     []string
}

func (f *fakeDelivery) Deliver(ctx context.Context, predictionID string) (int, string) {
	f.ids = append(f.ids, predictionID)
	return f.status, f.message
}
