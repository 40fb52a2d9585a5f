package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sr_store_bot/access"
	"sr_store_bot/ban"
	"sr_store_bot/config"
	"sr_store_bot/handlers"
	"sr_store_bot/online"
	"sr_store_bot/storage"
	"sr_store_bot/subscription"
	"sr_store_bot/support"
	"sr_store_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := storage.NewClient(storage.ClientConfig{
		BaseURL:   cfg.StoreBaseURL,
		APIKey:    cfg.StoreAPIKey,
		UsersBin:  cfg.UsersBinID,
		AdminsBin: cfg.AdminsBinID,
		Timeout:   cfg.StoreTimeout,
	}, logger)

	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {}),
	}
	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Fatal(err)
	}

	tglog.Init(b, cfg.LogChannelID, logger)

	notify := func(ctx context.Context, userID int64, text string) error {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: userID, Text: text})
		return err
	}

	h := handlers.New(b, cfg, store,
		access.New(store, logger),
		subscription.New(store, logger),
		ban.New(store, notify, logger),
		support.NewRouter(),
		online.NewClient(cfg.OnlineFeedURL, cfg.OnlineTimeout),
		logger)

	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, h.OnMessage)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.OnCallback)

	logger.Info("бот запущен")
	b.Start(ctx)
}
