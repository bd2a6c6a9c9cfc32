package model

// PhotoSize is one resolution variant of an incoming photo. The transport
// delivers variants ordered by resolution, largest last.
type PhotoSize struct {
	FileID string
	Width  int
	Height int
}

// ChatMessage is a single inbound message from the chat transport.
// Immutable once received; never persisted by this service.
type ChatMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	Photos    []PhotoSize
}

func (m *ChatMessage) HasPhoto() bool {
	return len(m.Photos) > 0
}

// LargestPhoto returns the highest-resolution variant. Callers must check
// HasPhoto first.
func (m *ChatMessage) LargestPhoto() PhotoSize {
	return m.Photos[len(m.Photos)-1]
}
