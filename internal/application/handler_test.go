package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain/model"
)

type recordingTransport struct {
	texts []string
	chats []int64
}

func (r *recordingTransport) SendText(ctx context.Context, chatID int64, text string) error {
	r.texts = append(r.texts, text)
	r.chats = append(r.chats, chatID)
	return nil
}

func (r *recordingTransport) SendTextWithQuote(ctx context.Context, chatID int64, text string, quotedMsgID int) error {
	return r.SendText(ctx, chatID, text)
}

func (r *recordingTransport) SendPhoto(ctx context.Context, chatID int64, localPath string) error {
	return nil
}

func (r *recordingTransport) DownloadPhoto(ctx context.Context, fileID string) (string, error) {
	return "", nil
}

type recordingSubmission struct {
	msgs []*model.ChatMessage
}

func (r *recordingSubmission) Submit(ctx context.Context, msg *model.ChatMessage) {
	r.msgs = append(r.msgs, msg)
}

func TestDefaultHandlerEchoes(t *testing.T) {
	transport := &recordingTransport{}
	nop := zerolog.Nop()
	h := NewDefaultHandler(transport, &nop)

	h.Handle(context.Background(), &model.ChatMessage{ChatID: 7, Text: "hello"})

	if len(transport.texts) != 1 || transport.texts[0] != "Your original message: hello" {
		t.Fatalf("unexpected echo: %+v", transport.texts)
	}
	if transport.chats[0] != 7 {
		t.Fatalf("echo sent to wrong chat: %d", transport.chats[0])
	}
}

func TestObjectDetectionHandlerDelegates(t *testing.T) {
	sub := &recordingSubmission{}
	nop := zerolog.Nop()
	h := NewObjectDetectionHandler(sub, &nop)

	msg := &model.ChatMessage{ChatID: 7, Photos: []model.PhotoSize{{FileID: "f1"}}}
	h.Handle(context.Background(), msg)

	if len(sub.msgs) != 1 || sub.msgs[0] != msg {
		t.Fatalf("expected message forwarded to submission pipeline, got %+v", sub.msgs)
	}
}
