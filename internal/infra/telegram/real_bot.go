package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-object-detection/internal/config"
	"telegram-object-detection/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.ChatTransport = (*RealChatTransport)(nil)

// RealChatTransport implements adapter.ChatTransport using tgbotapi in
// webhook mode. Updates arrive through the HTTP layer; this type only sends
// and downloads.
type RealChatTransport struct {
	bot         *tgbotapi.BotAPI
	cfg         *config.BotConfig
	httpClient  *http.Client
	downloadDir string
	log         *zerolog.Logger
}

func NewRealChatTransport(cfg *config.BotConfig, logger *zerolog.Logger) (*RealChatTransport, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}
	return &RealChatTransport{
		bot:         bot,
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		downloadDir: cfg.DownloadDir,
		log:         logger,
	}, nil
}

// RegisterWebhook drops any previously configured webhook and registers
// <public_url>/webhook/<token> with Telegram.
func (r *RealChatTransport) RegisterWebhook(ctx context.Context) error {
	if _, err := r.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("remove webhook: %w", err)
	}
	// Telegram needs a moment between webhook changes.
	time.Sleep(500 * time.Millisecond)

	url := fmt.Sprintf("%s/webhook/%s", strings.TrimRight(r.cfg.PublicURL, "/"), r.cfg.Token)
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("build webhook config: %w", err)
	}
	if _, err := r.bot.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	r.log.Info().Str("username", r.bot.Self.UserName).Msg("telegram webhook registered")
	return nil
}

func (r *RealChatTransport) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (r *RealChatTransport) SendTextWithQuote(ctx context.Context, chatID int64, text string, quotedMsgID int) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = quotedMsgID
	_, err := r.bot.Send(msg)
	return err
}

func (r *RealChatTransport) SendPhoto(ctx context.Context, chatID int64, localPath string) error {
	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("image path does not exist: %w", err)
	}
	_, err := r.bot.Send(tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(localPath)))
	return err
}

// DownloadPhoto fetches the file behind a transport-assigned file id into
// the download directory and returns the local path.
func (r *RealChatTransport) DownloadPhoto(ctx context.Context, fileID string) (string, error) {
	file, err := r.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(r.bot.Token), nil)
	if err != nil {
		return "", err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download file %s: unexpected status %s", fileID, resp.Status)
	}

	if err := os.MkdirAll(r.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	localPath := filepath.Join(r.downloadDir, filepath.Base(file.FilePath))
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write local file: %w", err)
	}
	return localPath, nil
}
