package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config хранит все настройки бота, читается из окружения.
type Config struct {
	BotToken string `env:"BOT_TOKEN" env-required:"true"`

	// Удалённое хранилище документов (jsonbin)
	StoreBaseURL string        `env:"JSONBIN_BASE_URL" env-default:"https://api.jsonbin.io/v3"`
	StoreAPIKey  string        `env:"JSONBIN_API_KEY"`
	AdminsBinID  string        `env:"JSONBIN_BIN_ID"`
	UsersBinID   string        `env:"JSONBIN_USERS_BIN_ID"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" env-default:"10s"`

	SupportGroupID int64 `env:"SUPPORT_GROUP_ID" env-default:"-1002756369611"`
	LogChannelID   int64 `env:"LOG_CHANNEL_ID" env-default:"0"`

	OnlineFeedURL string        `env:"ONLINE_FEED_URL" env-default:"http://launcher.hassle-games.com:3000/online.json"`
	OnlineTimeout time.Duration `env:"ONLINE_TIMEOUT" env-default:"10s"`

	UsersPerPage int `env:"USERS_PER_PAGE" env-default:"10"`
}

// MustLoad читает конфиг из переменных окружения, при ошибке завершает процесс.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("не удалось прочитать конфиг: %s", err)
	}
	return &cfg
}
