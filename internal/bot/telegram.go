package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tonyprice/nhldata/internal/service"
)

// TelegramBot runs the long-poll update loop and owns the announcement chat
// the scheduler posts into.
type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, statsService *service.StatsService) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}

	return &TelegramBot{
		bot:     api,
		handler: NewHandler(statsService),
		chatID:  chatID,
	}, nil
}

// Start consumes updates until ctx is cancelled. Only command messages are
// handled; everything else in the chat is ignored.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			slog.Info("Handling command",
				"command", update.Message.Command(),
				"from", update.Message.From.UserName,
			)

			if _, err := t.bot.Send(t.handler.HandleCommand(update)); err != nil {
				slog.Error("Error sending reply", "error", err)
			}
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return nil
		}
	}
}

// SendMessage posts Markdown text to the configured announcement chat.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		return errors.New("chat ID not set")
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
