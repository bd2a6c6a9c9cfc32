package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain/ports/adapter"
)

// NoopChatTransport implements adapter.ChatTransport for local/dev runs.
// It logs messages instead of talking to Telegram.
type NoopChatTransport struct {
	log *zerolog.Logger
}

func NewNoopChatTransport(logger *zerolog.Logger) *NoopChatTransport {
	return &NoopChatTransport{log: logger}
}

func (b *NoopChatTransport) SendText(ctx context.Context, chatID int64, text string) error {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	b.log.Info().Int64("chat_id", chatID).Str("text", text).Msg("[noop-telegram] send text")
	return nil
}

func (b *NoopChatTransport) SendTextWithQuote(ctx context.Context, chatID int64, text string, quotedMsgID int) error {
	b.log.Info().Int64("chat_id", chatID).Int("quoted", quotedMsgID).Str("text", text).Msg("[noop-telegram] send quoted text")
	return nil
}

func (b *NoopChatTransport) SendPhoto(ctx context.Context, chatID int64, localPath string) error {
	b.log.Info().Int64("chat_id", chatID).Str("path", localPath).Msg("[noop-telegram] send photo")
	return nil
}

// DownloadPhoto writes a placeholder file so the submission pipeline can run
// end to end without Telegram.
func (b *NoopChatTransport) DownloadPhoto(ctx context.Context, fileID string) (string, error) {
	localPath := filepath.Join(os.TempDir(), fmt.Sprintf("noop-%s.jpg", uuid.NewString()))
	if err := os.WriteFile(localPath, []byte(fileID), 0o644); err != nil {
		return "", err
	}
	b.log.Info().Str("file_id", fileID).Str("path", localPath).Msg("[noop-telegram] download photo")
	return localPath, nil
}

// Ensure interface compliance
var _ adapter.ChatTransport = (*NoopChatTransport)(nil)
