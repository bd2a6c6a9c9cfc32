package telegram

import (
	"strings"
	"testing"
)

const samplePhotoUpdate = `{
  "update_id": 100,
  "message": {
    "message_id": 5,
    "chat": {"id": 42, "type": "private"},
    "text": "",
    "photo": [
      {"file_id": "small", "file_unique_id": "u1", "width": 90, "height": 90},
      {"file_id": "medium", "file_unique_id": "u2", "width": 320, "height": 320},
      {"file_id": "large", "file_unique_id": "u3", "width": 1280, "height": 1280}
    ]
  }
}`

func TestParseUpdatePhotoMessage(t *testing.T) {
	msg, err := ParseUpdate(strings.NewReader(samplePhotoUpdate))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == nil {
		t.Fatal("expected a message")
	}
	if msg.ChatID != 42 || msg.MessageID != 5 {
		t.Errorf("ids decoded wrong: %+v", msg)
	}
	if len(msg.Photos) != 3 {
		t.Fatalf("expected 3 photo variants, got %d", len(msg.Photos))
	}
	if msg.LargestPhoto().FileID != "large" {
		t.Errorf("resolution ordering lost: %+v", msg.Photos)
	}
}

func TestParseUpdateTextMessage(t *testing.T) {
	msg, err := ParseUpdate(strings.NewReader(`{"update_id":1,"message":{"message_id":2,"chat":{"id":9},"text":"hi"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Text != "hi" || msg.HasPhoto() {
		t.Errorf("text message decoded wrong: %+v", msg)
	}
}

func TestParseUpdateNoMessage(t *testing.T) {
	msg, err := ParseUpdate(strings.NewReader(`{"update_id":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != nil {
		t.Fatalf("expected nil for update without message, got %+v", msg)
	}
}

func TestParseUpdateMalformed(t *testing.T) {
	if _, err := ParseUpdate(strings.NewReader(`{not-json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
