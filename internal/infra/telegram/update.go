package telegram

import (
	"encoding/json"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-object-detection/internal/domain/model"
)

// ParseUpdate decodes a Telegram webhook payload into a domain ChatMessage.
// Returns (nil, nil) for updates that carry no message (edits, callbacks and
// other update kinds this bot does not handle).
func ParseUpdate(body io.Reader) (*model.ChatMessage, error) {
	var update tgbotapi.Update
	if err := json.NewDecoder(body).Decode(&update); err != nil {
		return nil, err
	}
	if update.Message == nil || update.Message.Chat == nil {
		return nil, nil
	}

	msg := &model.ChatMessage{
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.MessageID,
		Text:      update.Message.Text,
	}
	for _, p := range update.Message.Photo {
		msg.Photos = append(msg.Photos, model.PhotoSize{
			FileID: p.FileID,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	return msg, nil
}
