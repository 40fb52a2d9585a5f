package tglog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var (
	b         *bot.Bot
	channelID int64
	logger    *slog.Logger
	enabled   bool
)

// Init включает зеркалирование действий админов в TG-канал.
func Init(tgBot *bot.Bot, chID int64, log *slog.Logger) {
	logger = log
	if chID == 0 {
		log.Info("LOG_CHANNEL_ID не задан, зеркалирование в канал отключено")
		return
	}
	b = tgBot
	channelID = chID
	enabled = true
	log.Info("зеркалирование действий в канал включено", slog.Int64("channel", chID))
}

// Send отправляет запись в лог-канал (неблокирующий).
func Send(format string, args ...any) {
	if !enabled {
		return
	}
	text := fmt.Sprintf(format, args...)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    channelID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			logger.Warn("ошибка отправки в лог-канал", slog.Any("err", err))
		}
	}()
}
