package adapter

import "context"

// ChatTransport wraps sending and receiving through the bot messaging
// channel. Implementations are expected to be safe for concurrent use.
type ChatTransport interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendTextWithQuote(ctx context.Context, chatID int64, text string, quotedMsgID int) error
	// SendPhoto fails if localPath does not exist.
	SendPhoto(ctx context.Context, chatID int64, localPath string) error
	// DownloadPhoto fetches the photo identified by the transport-assigned
	// file id into transient local storage and returns the local path.
	DownloadPhoto(ctx context.Context, fileID string) (string, error)
}
