package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	Database    Database
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Database struct {
	Path string `envconfig:"DATABASE_PATH" default:"nhldata.db"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NewDatabase reads only the database settings, for tools that do not
// need the bot credentials.
func NewDatabase() (Database, error) {
	var d Database
	err := envconfig.Process("", &d)
	return d, err
}
